package heap

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaninja/algosharp/algo"
)

var _ algo.Sequence[int] = (*Heap[int])(nil)

func newMinHeap() *Heap[int] {
	h := NewOrdered[int]()
	for _, v := range []int{5, 10, 3, -5, -7, 0, 0, 1, 1, 1, 1, 12, 24, 79} {
		h.Add(v)
	}
	return h
}

func newMaxHeap() *Heap[int] {
	h := New(algo.Reverse(algo.Natural[int]()))
	for _, v := range []int{5, 10, 3, -5, -7, 0, 0, 1, 1, 1, 1, 12, 24, 79} {
		h.Add(v)
	}
	return h
}

func fromValues(values ...int) *Heap[int] {
	h := NewWithCapacity(len(values), algo.Natural[int]())
	for _, v := range values {
		h.Add(v)
	}
	return h
}

func TestNewWithCapacity(t *testing.T) {
	h := NewWithCapacity(16, algo.Natural[int]())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 16, h.Cap())

	h = NewWithCapacity(-1, algo.Natural[int]())
	assert.Equal(t, 0, h.Cap())
}

func TestPeekEmpty(t *testing.T) {
	h := NewOrdered[int]()
	_, err := h.Peek()
	require.True(t, errors.Is(err, algo.ErrEmptyCollection), "Peek on empty heap: %v", err)
}

func TestPeekMinHeap(t *testing.T) {
	h := newMinHeap()
	h.Add(math.MinInt)

	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, v)
	assert.Equal(t, v, h.At(0))
}

func TestPollEmpty(t *testing.T) {
	h := NewOrdered[int]()
	_, err := h.Poll()
	require.ErrorIs(t, err, algo.ErrEmptyCollection)
}

func TestPollMaxHeap(t *testing.T) {
	h := newMaxHeap()
	h.Add(math.MaxInt)

	top, err := h.Poll()
	require.NoError(t, err)
	next, err := h.Peek()
	require.NoError(t, err)

	assert.Equal(t, math.MaxInt, top)
	assert.Equal(t, 79, next)
	assert.True(t, h.Validate())
}

func TestPollSingleItem(t *testing.T) {
	h := fromValues(1)

	v, err := h.Poll()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, h.Len())
}

func TestPollDrainsInOrder(t *testing.T) {
	h := newMinHeap()
	want := slices.Sorted(h.All())

	var got []int
	for h.Len() > 0 {
		v, err := h.Poll()
		require.NoError(t, err)
		require.True(t, h.Validate())
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

func TestHeapifyManuallyChanged(t *testing.T) {
	h := newMinHeap()

	h.Set(h.Len()-2, math.MinInt)
	h.Heapify()

	assert.Equal(t, math.MinInt, h.At(0))
}

// The repair pass compares each node with its parent once, top to bottom.
// A large value pushed down early is not revisited, so the result can still
// violate the heap property.
func TestHeapifySinglePass(t *testing.T) {
	h := fromValues(0, 1, 2, 3)
	for i, v := range []int{3, 1, 2, 0} {
		h.Set(i, v)
	}

	h.Heapify()

	assert.Equal(t, []int{0, 2, 3, 1}, h.Values())
	assert.False(t, h.Validate())
}

func TestHeapifyValidHeapUnchanged(t *testing.T) {
	h := newMinHeap()
	before := h.Values()

	h.Heapify()

	assert.Equal(t, before, h.Values())
	assert.True(t, h.Validate())
}

func TestAllSum(t *testing.T) {
	h := NewOrdered[int]()
	for i := 1; i <= 10; i++ {
		h.Add(i)
	}

	sum := 0
	for v := range h.All() {
		sum += v
	}
	assert.Equal(t, 55, sum)

	// Iteration does not consume the heap.
	assert.Equal(t, 10, h.Len())
	n := 0
	for range h.All() {
		n++
	}
	assert.Equal(t, 10, n)
}

func TestRemoveMissing(t *testing.T) {
	h := fromValues(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	before := h.Values()

	assert.False(t, h.Remove(10000))
	assert.Equal(t, before, h.Values())
}

func TestRemoveEmpty(t *testing.T) {
	h := NewOrdered[int]()
	assert.False(t, h.Remove(10000))
}

func TestRemoveSiftDown(t *testing.T) {
	h := fromValues(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	require.True(t, h.Remove(2))

	assert.True(t, h.Validate())
	assert.Equal(t, 4, h.At(1))
	assert.Equal(t, 8, h.At(3))
	assert.Equal(t, 10, h.At(7))
}

func TestRemoveSiftUp(t *testing.T) {
	h := fromValues(1, 2, 30, 17, 19, 36, 37, 25)

	require.True(t, h.Remove(37))

	assert.True(t, h.Validate())
	assert.Equal(t, 25, h.At(2))
	assert.Equal(t, 30, h.At(6))
}

func TestRemoveOnlyElement(t *testing.T) {
	h := fromValues(42)

	require.True(t, h.Remove(42))
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.Validate())
}

func TestRemoveLastAndRoot(t *testing.T) {
	h := fromValues(1, 2, 3, 4, 5)

	last := h.At(h.Len() - 1)
	require.True(t, h.Remove(last))
	assert.Equal(t, []int{1, 2, 3, 4}, h.Values())

	require.True(t, h.Remove(1))
	assert.True(t, h.Validate())
	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRemoveDuplicateRemovesOne(t *testing.T) {
	h := fromValues(3, 1, 3, 2, 3)

	require.True(t, h.Remove(3))
	assert.Equal(t, 4, h.Len())
	assert.True(t, h.Validate())

	count := 0
	for v := range h.All() {
		if v == 3 {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestValidate(t *testing.T) {
	h := newMinHeap()
	assert.True(t, h.Validate())

	h.Set(0, math.MaxInt)
	assert.False(t, h.Validate())
}

type task struct {
	name     string
	priority int
}

func TestCustomComparator(t *testing.T) {
	h := New(func(a, b task) int { return b.priority - a.priority })
	h.Add(task{"low", 1})
	h.Add(task{"high", 9})
	h.Add(task{"mid", 5})

	// Remove matches by comparator equality, not by value identity.
	require.True(t, h.Remove(task{"other", 5}))

	top, err := h.Poll()
	require.NoError(t, err)
	assert.Equal(t, "high", top.name)
	top, err = h.Poll()
	require.NoError(t, err)
	assert.Equal(t, "low", top.name)
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, c := range []algo.Comparator[int]{algo.Natural[int](), algo.Reverse(algo.Natural[int]())} {
		h := New(c)
		var model []int
		for range 5000 {
			switch op := rng.IntN(10); {
			case op < 5:
				v := rng.IntN(100)
				h.Add(v)
				model = append(model, v)
				top, err := h.Peek()
				require.NoError(t, err)
				assert.Equal(t, slices.MinFunc(model, c), top)
			case op < 8:
				v, err := h.Poll()
				if len(model) == 0 {
					require.ErrorIs(t, err, algo.ErrEmptyCollection)
					continue
				}
				require.NoError(t, err)
				want := slices.MinFunc(model, c)
				require.Equal(t, want, v)
				model = slices.Delete(model, slices.Index(model, want), slices.Index(model, want)+1)
			default:
				v := rng.IntN(100)
				i := slices.Index(model, v)
				require.Equal(t, i >= 0, h.Remove(v))
				if i >= 0 {
					model = slices.Delete(model, i, i+1)
				}
			}
			require.True(t, h.Validate())
			require.Equal(t, len(model), h.Len())
		}
		assert.ElementsMatch(t, model, h.Values())
	}
}
