package benchmark

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// Result holds the timings of one benchmarked action.
type Result struct {
	// Name is the action name.
	Name string

	stamps   []time.Duration
	spans    []time.Duration
	total    time.Duration
	median   float64
	variance float64
}

// newResult builds a Result from cumulative stamps: stamps[i] is the time
// elapsed from the start of the timed loop to the end of call i.
func newResult(name string, stamps []time.Duration, total time.Duration) *Result {
	r := &Result{
		Name:   name,
		stamps: stamps,
		spans:  make([]time.Duration, len(stamps)),
		total:  total,
	}
	for i, s := range stamps {
		if i == 0 {
			r.spans[i] = s
		} else {
			r.spans[i] = s - stamps[i-1]
		}
	}

	data := stats.Float64Data(lo.Map(r.spans, func(d time.Duration, _ int) float64 {
		return float64(d)
	}))
	// stats reports NaN for empty input; an empty result keeps zero values.
	if len(data) > 0 {
		r.median, _ = stats.Median(data)
		r.variance, _ = stats.PopulationVariance(data)
	}
	return r
}

// TotalIterations returns the number of timed calls.
func (r *Result) TotalIterations() int { return len(r.stamps) }

// TotalTime returns the wall time of the timed loop.
func (r *Result) TotalTime() time.Duration { return r.total }

// Stamps returns the cumulative elapsed time after each call.
func (r *Result) Stamps() []time.Duration { return slices.Clone(r.stamps) }

// Spans returns the duration of each call.
func (r *Result) Spans() []time.Duration { return slices.Clone(r.spans) }

// Average returns the mean time per call.
func (r *Result) Average() time.Duration {
	if len(r.stamps) == 0 {
		return 0
	}
	return r.total / time.Duration(len(r.stamps))
}

// Median returns the median time per call. For an even number of calls it
// is the mean of the two middle spans.
func (r *Result) Median() time.Duration {
	return time.Duration(r.median)
}

// Variance returns the population variance of the spans in nanoseconds
// squared.
func (r *Result) Variance() float64 {
	return r.variance
}

// StdDev returns the population standard deviation of the spans.
func (r *Result) StdDev() time.Duration {
	return time.Duration(math.Sqrt(r.variance))
}

// String returns a multi-line report.
func (r *Result) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "-----%s-----\n", r.Name)

	if r.TotalIterations() == 0 {
		sb.WriteString("No benchmark conducted\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Total time: %s\n", r.total)
	fmt.Fprintf(&sb, "Iterations: %d\n", r.TotalIterations())
	fmt.Fprintf(&sb, "Time per execute (avg): %s\n", r.Average())
	fmt.Fprintf(&sb, "Time per execute (median): %s\n", r.Median())
	fmt.Fprintf(&sb, "Milliseconds per execute: %d\n", r.total.Milliseconds()/int64(r.TotalIterations()))

	return sb.String()
}
