package benchmark

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaninja/algosharp/algo"
)

func TestComparisonOrderedByMedian(t *testing.T) {
	results := []*Result{
		newResult("slow", stampsOf(30*time.Microsecond), 30*time.Microsecond),
		newResult("fast", stampsOf(10*time.Microsecond), 10*time.Microsecond),
		newResult("medium", stampsOf(20*time.Microsecond), 20*time.Microsecond),
	}

	table, err := Comparison(results)
	require.NoError(t, err)

	header := strings.Index(table, "Name")
	fast := strings.Index(table, "fast")
	medium := strings.Index(table, "medium")
	slow := strings.Index(table, "slow")
	require.True(t, header >= 0 && fast >= 0 && medium >= 0 && slow >= 0, table)
	assert.Less(t, header, fast, table)
	assert.Less(t, fast, medium, table)
	assert.Less(t, medium, slow, table)
	assert.Contains(t, table, "10µs")
	assert.Contains(t, table, "StdDev")

	// The input order is left alone.
	assert.Equal(t, "slow", results[0].Name)
}

func TestComparisonEmpty(t *testing.T) {
	_, err := Comparison(nil)
	require.ErrorIs(t, err, algo.ErrInvalidArgument)
}
