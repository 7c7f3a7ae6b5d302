package main

import (
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kalaninja/algosharp/algo"
	"github.com/kalaninja/algosharp/algo/contrib/benchmark"
	"github.com/kalaninja/algosharp/internal/logutil"
)

// Config is the benchmark configuration after merging flags, environment
// and config file.
type Config struct {
	Size       int               `mapstructure:"size"`
	Times      int               `mapstructure:"times"`
	Duration   time.Duration     `mapstructure:"duration"`
	Warmup     int               `mapstructure:"warmup"`
	Order      string            `mapstructure:"order"`
	Seed       uint64            `mapstructure:"seed"`
	Algorithms []string          `mapstructure:"algorithms"`
	Procs      int               `mapstructure:"procs"`
	Log        logutil.LogConfig `mapstructure:"log"`
}

// registerFlags declares the benchmark flags on fs and binds them into v.
func registerFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	defaults := logutil.DefaultConfig()

	fs.Int("size", 10000, "number of input elements")
	fs.Int("times", 10, "timed calls per action")
	fs.Duration("duration", 0, "time each action for this long instead of a fixed number of calls")
	fs.Int("warmup", 1, "untimed calls before each action is timed")
	fs.String("order", string(benchmark.OrderRandom), "input order: "+orderNames())
	fs.Uint64("seed", 1, "seed for random input")
	fs.StringSlice("algorithms", nil, "sorts to run, by name or alias (default all)")
	fs.Int("procs", 0, "GOMAXPROCS for the run, 0 keeps the current value")
	fs.String("log-level", defaults.Level, "log level: debug, info, warn, error")
	fs.String("log-format", defaults.Format, "log format: console or json")
	fs.String("log-file", "", "log file, rotated by size (default stderr)")
	fs.Int("log-max-size", defaults.MaxSize, "log file size in megabytes before rotation")

	keys := map[string]string{
		"size":         "size",
		"times":        "times",
		"duration":     "duration",
		"warmup":       "warmup",
		"order":        "order",
		"seed":         "seed",
		"algorithms":   "algorithms",
		"procs":        "procs",
		"log-level":    "log.level",
		"log-format":   "log.format",
		"log-file":     "log.file",
		"log-max-size": "log.max-size",
	}
	for flag, key := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind flag %s", flag)
		}
	}

	v.SetEnvPrefix("ALGOBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return nil
}

func orderNames() string {
	names := make([]string, len(benchmark.Orders))
	for i, o := range benchmark.Orders {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}

// loadConfig reads cfgFile, if any, and decodes the merged configuration.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Size < 0 {
		return errors.Wrapf(algo.ErrInvalidArgument, "size must not be negative, got %d", c.Size)
	}
	if c.Duration < 0 {
		return errors.Wrapf(algo.ErrInvalidArgument, "duration must not be negative, got %s", c.Duration)
	}
	if c.Procs < 0 {
		return errors.Wrapf(algo.ErrInvalidArgument, "procs must not be negative, got %d", c.Procs)
	}
	if _, err := benchmark.ParseOrder(c.Order); err != nil {
		return err
	}
	return nil
}

// apply sets process-wide settings. It must run before the first parallel
// sort, which sizes the shared worker pool from GOMAXPROCS.
func (c Config) apply() {
	if c.Procs > 0 {
		runtime.GOMAXPROCS(c.Procs)
	}
}
