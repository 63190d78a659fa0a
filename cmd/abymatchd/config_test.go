// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(`addr: ":9000"
algo: typo
layout: Dvorak
metric: manhattan
costs: [1, 1, 0.5, 0.5]
min_sim: 0.5
limit: 10
workers: 4
block: dm
names:
  - Christopher
  - Katherine
rate_qps: 2
rate_burst: 5
rate_cache_size: 64
`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(p)
	if err != nil {
		t.Fatal("loadConfig failed:", err)
	}
	want := &config{
		Addr:          ":9000",
		Algo:          algoTypo,
		Costs:         []float64{1, 1, 0.5, 0.5},
		Layout:        "Dvorak",
		Metric:        "manhattan",
		MinSim:        0.5,
		Limit:         10,
		Workers:       4,
		Block:         "dm",
		Names:         []string{"Christopher", "Katherine"},
		RateQPS:       2,
		RateBurst:     5,
		RateCacheSize: 64,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Error("loadConfig returned wrong config (-want +got):\n", diff)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal("loadConfig failed:", err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Error("loadConfig didn't return defaults (-want +got):\n", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct{ desc, data string }{
		{"bad yaml", "algo: ["},
		{"conflicting sources", "names: [Smith]\nredis:\n  addr: localhost:6379\n"},
		{"min_sim range", "min_sim: 1.5"},
		{"negative qps", "rate_qps: -1"},
		{"zero burst", "rate_qps: 2\nrate_burst: 0\n"},
		{"negative limit", "limit: -1"},
	} {
		p := filepath.Join(dir, tc.desc)
		if err := os.WriteFile(p, []byte(tc.data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfig(p); err == nil {
			t.Errorf("%v: loadConfig unexpectedly succeeded", tc.desc)
		}
	}

	if _, err := loadConfig(filepath.Join(dir, "missing")); err == nil {
		t.Error("loadConfig succeeded for a missing file")
	}
}
