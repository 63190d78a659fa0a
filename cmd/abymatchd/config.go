// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fossabot/abydos/dist"
)

// config configures the abymatchd server.
type config struct {
	// Addr is the address to listen on for HTTP requests.
	Addr string `yaml:"addr"`

	// Algo selects the scoring algorithm: editex, lev, mra, or typo.
	Algo string `yaml:"algo"`
	// Costs overrides the algorithm's edit costs.
	// editex takes [match, group, mismatch], lev [ins, del, sub],
	// and typo [ins, del, sub, shift]; empty keeps the defaults.
	Costs []float64 `yaml:"costs"`
	// Layout names the keyboard layout for the typo algorithm.
	Layout string `yaml:"layout"`
	// Metric names the key distance metric for the typo algorithm.
	Metric string `yaml:"metric"`
	// Local switches editex to local alignment.
	Local bool `yaml:"local"`

	// MinSim drops matches scoring below this similarity in [0, 1].
	MinSim float64 `yaml:"min_sim"`
	// Limit caps the number of matches returned (0 is unlimited).
	Limit int `yaml:"limit"`
	// Workers sets the number of concurrent scoring goroutines
	// (0 uses all CPUs).
	Workers int `yaml:"workers"`
	// Block names a phonetic encoder used to skip scoring candidates that
	// share no codes with the query: caverphone, dm, fonem, henry, mra,
	// norphone, or sfinxbis. Empty scores every candidate.
	Block string `yaml:"block"`

	// Names seeds the in-memory dictionary.
	Names []string `yaml:"names"`
	// NamesFile loads the dictionary from a newline-delimited file instead.
	NamesFile string `yaml:"names_file"`
	// Redis holds the dictionary in a Redis set instead.
	Redis redisConfig `yaml:"redis"`

	// RateQPS limits each client's sustained request rate
	// (0 disables rate limiting).
	RateQPS float64 `yaml:"rate_qps"`
	// RateBurst is the number of requests a client may burst above RateQPS.
	RateBurst int `yaml:"rate_burst"`
	// RateCacheSize bounds the number of clients tracked for rate limiting.
	RateCacheSize int `yaml:"rate_cache_size"`
}

// redisConfig locates a Redis set holding candidate names.
type redisConfig struct {
	Addr     string `yaml:"addr"`     // host:port; empty disables Redis
	Password string `yaml:"password"` // empty for no auth
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"` // set name; "abymatch:names" if empty
}

const defaultRedisKey = "abymatch:names"

func defaultConfig() *config {
	return &config{
		Addr:          "localhost:8999",
		Algo:          algoEditex,
		Layout:        "QWERTY",
		Metric:        string(dist.Euclidean),
		RateQPS:       5,
		RateBurst:     10,
		RateCacheSize: 256,
	}
}

// loadConfig reads the YAML config at path. An empty path returns defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("bad config in %v: %w", path, err)
	}
	return cfg, nil
}

func (cfg *config) check() error {
	nsrc := 0
	if len(cfg.Names) > 0 {
		nsrc++
	}
	if cfg.NamesFile != "" {
		nsrc++
	}
	if cfg.Redis.Addr != "" {
		nsrc++
	}
	if nsrc > 1 {
		return errors.New("names, names_file, and redis are mutually exclusive")
	}
	if cfg.MinSim < 0 || cfg.MinSim > 1 {
		return fmt.Errorf("min_sim %v outside [0, 1]", cfg.MinSim)
	}
	if cfg.Limit < 0 || cfg.Workers < 0 {
		return errors.New("limit and workers must be non-negative")
	}
	if cfg.RateQPS < 0 || cfg.RateBurst < 0 {
		return errors.New("rate_qps and rate_burst must be non-negative")
	}
	if cfg.RateQPS > 0 && (cfg.RateBurst == 0 || cfg.RateCacheSize <= 0) {
		return errors.New("rate limiting needs positive rate_burst and rate_cache_size")
	}
	return nil
}
