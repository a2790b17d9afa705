// Package config loads the tuning of the map analysis.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexvelea/go-sc2ai/search"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the file format of the analysis tools.
type Config struct {
	Search search.Options `yaml:"search"`
	// Snapshot is the default recorded snapshot to analyse.
	Snapshot string `yaml:"snapshot"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Search: search.DefaultOptions()}
}

// Load reads the YAML file at path on top of the defaults, then applies SC2AI_* environment
// overrides, one per search option. Variables in a .env file of the working directory are loaded first. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %v: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("SC2AI_SNAPSHOT"); v != "" {
		cfg.Snapshot = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"SC2AI_CONNECTIVITY", (*int)(&cfg.Search.Connectivity)},
		{"SC2AI_MIN_REGION_SIZE", &cfg.Search.MinRegionSize},
	}
	for _, e := range ints {
		if v := os.Getenv(e.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%v: %w", e.name, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("SC2AI_TOWN_HALL_SEARCH_RANGE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("SC2AI_TOWN_HALL_SEARCH_RANGE: %w", err)
		}
		cfg.Search.TownHallSearchRange = int32(n)
	}

	floats := []struct {
		name string
		dst  *float32
	}{
		{"SC2AI_RESOURCE_SPREAD_THRESHOLD", &cfg.Search.ResourceSpreadThreshold},
		{"SC2AI_TOWN_HALL_SEARCH_RADIUS", &cfg.Search.TownHallSearchRadius},
		{"SC2AI_MINERAL_CLEARANCE", &cfg.Search.MineralClearance},
		{"SC2AI_GEYSER_CLEARANCE", &cfg.Search.GeyserClearance},
		{"SC2AI_OWNED_EXPANSION_RADIUS", &cfg.Search.OwnedExpansionRadius},
	}
	for _, e := range floats {
		if v := os.Getenv(e.name); v != "" {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return fmt.Errorf("%v: %w", e.name, err)
			}
			*e.dst = float32(f)
		}
	}
	return nil
}
