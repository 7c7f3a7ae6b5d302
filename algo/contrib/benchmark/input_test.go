package benchmark

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/workerpool"
)

func TestParseOrder(t *testing.T) {
	for _, o := range Orders {
		got, err := ParseOrder(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	got, err := ParseOrder("Reversed")
	require.NoError(t, err)
	assert.Equal(t, OrderReversed, got)

	_, err = ParseOrder("shuffled")
	require.ErrorIs(t, err, algo.ErrInvalidArgument)
}

func TestGenerateIntsOrders(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, GenerateInts(4, OrderSorted, 0, nil))
	assert.Equal(t, []int{4, 3, 2, 1}, GenerateInts(4, OrderReversed, 0, nil))
	assert.Empty(t, GenerateInts(0, OrderRandom, 0, nil))
	assert.Empty(t, GenerateInts(-5, OrderRandom, 0, nil))

	for _, v := range GenerateInts(1000, OrderFewUnique, 1, nil) {
		require.True(t, v >= 0 && v < 10, v)
	}
	for _, v := range GenerateInts(1000, OrderRandom, 1, nil) {
		require.True(t, v >= 0 && v < 1000, v)
	}
}

func TestGenerateIntsDeterministic(t *testing.T) {
	n := 3*generateBlock + 17
	want := GenerateInts(n, OrderRandom, 42, nil)

	for _, workers := range []int{1, 3, 8} {
		pool := workerpool.New(workers)
		got := GenerateInts(n, OrderRandom, 42, pool)
		pool.Close()
		require.True(t, slices.Equal(want, got), "workers=%d", workers)
	}

	assert.False(t, slices.Equal(want, GenerateInts(n, OrderRandom, 43, nil)))
}
