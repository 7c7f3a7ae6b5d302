package algo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialOnly(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("ALGO_NO_PARALLEL", tt.val)
			assert.Equal(t, tt.want, SequentialOnly())
		})
	}
}

func TestPlatform(t *testing.T) {
	t.Setenv("ALGO_NO_PARALLEL", "1")

	info := Platform()
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.NumCPU(), info.NumCPU)
	assert.True(t, info.Sequential)

	s := info.String()
	assert.True(t, strings.HasPrefix(s, runtime.GOOS+"/"+runtime.GOARCH), s)
	assert.Contains(t, s, "vector="+info.Vector.String())
	assert.True(t, strings.HasSuffix(s, " sequential"), s)
}

func TestVectorLevelString(t *testing.T) {
	assert.Equal(t, "none", VectorNone.String())
	assert.Equal(t, "avx512", VectorAVX512.String())
	assert.Equal(t, "sve", VectorSVE.String())
	assert.Equal(t, "unknown", VectorLevel(99).String())
}
