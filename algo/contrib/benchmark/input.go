package benchmark

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/workerpool"
)

// Order is the arrangement of generated benchmark input.
type Order string

const (
	// OrderRandom is uniformly random values in [0, n).
	OrderRandom Order = "random"
	// OrderSorted is 1..n ascending.
	OrderSorted Order = "sorted"
	// OrderReversed is n..1 descending.
	OrderReversed Order = "reversed"
	// OrderFewUnique is random values in [0, 10).
	OrderFewUnique Order = "few-unique"
)

// Orders lists every supported Order.
var Orders = []Order{OrderRandom, OrderSorted, OrderReversed, OrderFewUnique}

// ParseOrder parses an Order name, ignoring case.
func ParseOrder(s string) (Order, error) {
	for _, o := range Orders {
		if strings.EqualFold(string(o), s) {
			return o, nil
		}
	}
	return "", errors.Wrapf(algo.ErrInvalidArgument, "unknown input order %q", s)
}

// generateBlock is the number of elements drawn from one generator. Blocks
// are seeded by index, so the output does not depend on the pool size.
const generateBlock = 1 << 14

// GenerateInts returns n integers in the given order. Random orders are
// deterministic for a given seed. A nil pool generates on the calling
// goroutine.
func GenerateInts(n int, order Order, seed uint64, pool *workerpool.Pool) []int {
	data := make([]int, max(n, 0))
	blocks := (len(data) + generateBlock - 1) / generateBlock

	fill := func(startBlock, endBlock int) {
		for blk := startBlock; blk < endBlock; blk++ {
			rng := rand.New(rand.NewPCG(seed, uint64(blk)))
			start := blk * generateBlock
			end := min(start+generateBlock, len(data))
			for i := start; i < end; i++ {
				switch order {
				case OrderSorted:
					data[i] = i + 1
				case OrderReversed:
					data[i] = len(data) - i
				case OrderFewUnique:
					data[i] = rng.IntN(10)
				default:
					data[i] = rng.IntN(len(data))
				}
			}
		}
	}

	if pool == nil {
		fill(0, blocks)
	} else {
		pool.ParallelFor(blocks, fill)
	}
	return data
}
