// Copyright 2025 algosharp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package benchmark times repeated invocations of the algorithms in this
// module and compares them statistically.
//
//	results, err := benchmark.ComparisonSorts(input, algo.Natural[int]()).
//	    Warmup(2).
//	    Run(50)
//	if err != nil {
//	    return err
//	}
//	table, _ := benchmark.Comparison(results)
//	fmt.Print(table)
//
// Actions run one after another on the calling goroutine. Each action gets
// its warmup calls, then two garbage collections, then the timed calls.
package benchmark

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kalaninja/algosharp/algo"
)

type action struct {
	name string
	fn   func()
}

// Benchmark is an ordered list of named actions to time.
type Benchmark struct {
	actions []action
	warmup  int
	logger  *zap.Logger
}

// New returns an empty benchmark with one warmup call per action.
func New() *Benchmark {
	return &Benchmark{
		warmup: 1,
		logger: zap.NewNop(),
	}
}

// For returns a benchmark with a single action.
func For(name string, fn func()) *Benchmark {
	return New().And(name, fn)
}

// And appends an action.
func (b *Benchmark) And(name string, fn func()) *Benchmark {
	b.actions = append(b.actions, action{name: name, fn: fn})
	return b
}

// Warmup sets the number of untimed calls made before each action is timed.
// It must be at least 1; Run and RunFor report invalid values.
func (b *Benchmark) Warmup(times int) *Benchmark {
	b.warmup = times
	return b
}

// WithLogger sets the logger used for progress messages.
func (b *Benchmark) WithLogger(logger *zap.Logger) *Benchmark {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.logger = logger
	return b
}

// Names returns the action names in registration order.
func (b *Benchmark) Names() []string {
	names := make([]string, len(b.actions))
	for i, a := range b.actions {
		names[i] = a.name
	}
	return names
}

// Run calls every action times times and returns one Result per action, in
// registration order.
func (b *Benchmark) Run(times int) ([]*Result, error) {
	if times < 1 {
		return nil, errors.Wrapf(algo.ErrInvalidArgument, "times must be positive, got %d", times)
	}
	return b.run(func(iterations int, _ time.Duration) bool {
		return iterations < times
	})
}

// RunFor calls every action repeatedly until d has elapsed for that action
// and returns one Result per action, in registration order. The call in
// progress when d expires completes and is recorded.
func (b *Benchmark) RunFor(d time.Duration) ([]*Result, error) {
	if d <= 0 {
		return nil, errors.Wrapf(algo.ErrInvalidArgument, "duration must be positive, got %s", d)
	}
	return b.run(func(_ int, elapsed time.Duration) bool {
		return elapsed <= d
	})
}

func (b *Benchmark) run(more func(iterations int, elapsed time.Duration) bool) ([]*Result, error) {
	if b.warmup < 1 {
		return nil, errors.Wrapf(algo.ErrInvalidArgument, "warmup must be positive, got %d", b.warmup)
	}

	results := make([]*Result, len(b.actions))
	for i, a := range b.actions {
		log := b.logger.With(zap.String("action", a.name))
		log.Debug("warming up", zap.Int("calls", b.warmup))
		for range b.warmup {
			a.fn()
		}

		runtime.GC()
		runtime.GC()

		var (
			stamps  []time.Duration
			elapsed time.Duration
		)
		start := time.Now()
		for more(len(stamps), elapsed) {
			a.fn()
			elapsed = time.Since(start)
			stamps = append(stamps, elapsed)
		}
		total := time.Since(start)

		results[i] = newResult(a.name, stamps, total)
		log.Info("benchmark finished",
			zap.Int("iterations", results[i].TotalIterations()),
			zap.Duration("total", total),
			zap.Duration("median", results[i].Median()),
			zap.Duration("stddev", results[i].StdDev()),
		)
	}
	return results, nil
}
