package main

import (
	"github.com/spf13/viper"
)

type Config struct {
	Seed        int64  `mapstructure:"seed"`       // 0 means time-seeded
	Goroutines  int    `mapstructure:"goroutines"` // warm-up parallelism
	Games       int    `mapstructure:"games"`      // demo games to play
	CachePath   string `mapstructure:"cache_path"` // cache snapshot, empty disables
	Speedup     bool   `mapstructure:"speedup"`    // run the speedup experiment
	SpeedupRuns int    `mapstructure:"speedup_runs"`
}

func loadConfig(cfgPath string) (*Config, error) {
	viper.SetDefault("seed", 0)
	viper.SetDefault("goroutines", 4)
	viper.SetDefault("games", 3)
	viper.SetDefault("cache_path", "")
	viper.SetDefault("speedup", false)
	viper.SetDefault("speedup_runs", 3)

	if cfgPath != "" {
		viper.SetConfigFile(cfgPath)
		err := viper.ReadInConfig()
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	err := viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
