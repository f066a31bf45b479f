package cmd

import (
	"github.com/spf13/viper"
)

// Defaults holds the flag default values, overridable through
// FRONTLINE_* environment variables (FRONTLINE_WORKERS, FRONTLINE_RUNS,
// FRONTLINE_VERTICES, FRONTLINE_DENSITY, FRONTLINE_SEED).
type Defaults struct {
	Workers  int     `mapstructure:"workers"`
	Runs     int     `mapstructure:"runs"`
	Vertices int     `mapstructure:"vertices"`
	Density  float64 `mapstructure:"density"`
	Seed     int64   `mapstructure:"seed"`
}

// loadDefaults resolves flag defaults from the environment, falling
// back to built-in values. Flags passed on the command line always win.
func loadDefaults() Defaults {
	v := viper.New()

	v.SetDefault("workers", defaultWorkers())
	v.SetDefault("runs", 3)
	v.SetDefault("vertices", 100000)
	v.SetDefault("density", 0.0001)
	v.SetDefault("seed", 42)

	v.SetEnvPrefix("FRONTLINE")
	v.AutomaticEnv()

	var cfg Defaults
	if err := v.Unmarshal(&cfg); err != nil {
		// Malformed environment values fall back to built-ins.
		return Defaults{
			Workers:  defaultWorkers(),
			Runs:     3,
			Vertices: 100000,
			Density:  0.0001,
			Seed:     42,
		}
	}

	return cfg
}
