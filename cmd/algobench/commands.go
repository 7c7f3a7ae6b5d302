package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/benchmark"
	"github.com/kalaninja/algosharp/algo/contrib/workerpool"
	"github.com/kalaninja/algosharp/internal/logutil"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "algobench",
		Short:        "Benchmark the sorts and the binary heap",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	cobra.CheckErr(registerFlags(root.PersistentFlags(), v))

	// setup loads the configuration and builds the logger for a subcommand.
	setup := func() (Config, *zap.Logger, error) {
		cfg, err := loadConfig(v, cfgFile)
		if err != nil {
			return Config{}, nil, err
		}
		logger, err := logutil.New(cfg.Log)
		if err != nil {
			return Config{}, nil, err
		}
		cfg.apply()
		return cfg, logger, nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "sorts",
			Short: "Compare the sort algorithms on generated input",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := setup()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()

				input := generate(cfg, logger)
				var b *benchmark.Benchmark
				if len(cfg.Algorithms) > 0 {
					b, err = benchmark.ComparisonSortsOf(input, algo.Natural[int](), cfg.Algorithms...)
					if err != nil {
						return err
					}
				} else {
					b = benchmark.ComparisonSorts(input, algo.Natural[int]())
				}
				return run(cmd.OutOrStdout(), b, cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "heap",
			Short: "Time binary heap workloads on generated input",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := setup()
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()

				input := generate(cfg, logger)
				return run(cmd.OutOrStdout(), benchmark.HeapOperations(input, algo.Natural[int]()), cfg, logger)
			},
		},
		&cobra.Command{
			Use:   "platform",
			Short: "Print the detected platform",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), algo.Platform())
			},
		},
	)
	return root
}

// generate builds the benchmark input. Validation has already accepted
// cfg.Order.
func generate(cfg Config, logger *zap.Logger) []int {
	order, _ := benchmark.ParseOrder(cfg.Order)
	input := benchmark.GenerateInts(cfg.Size, order, cfg.Seed, workerpool.Default())
	logger.Debug("generated input",
		zap.Int("size", len(input)),
		zap.String("order", string(order)),
		zap.Uint64("seed", cfg.Seed),
	)
	return input
}

func run(w io.Writer, b *benchmark.Benchmark, cfg Config, logger *zap.Logger) error {
	b.Warmup(cfg.Warmup).WithLogger(logger)
	logger.Info("starting benchmark",
		zap.Strings("actions", b.Names()),
		zap.Stringer("platform", algo.Platform()),
	)

	var (
		results []*benchmark.Result
		err     error
	)
	if cfg.Duration > 0 {
		results, err = b.RunFor(cfg.Duration)
	} else {
		results, err = b.Run(cfg.Times)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\nsize=%d order=%s\n\n", algo.Platform(), cfg.Size, cfg.Order)
	return benchmark.WriteComparison(w, results)
}
