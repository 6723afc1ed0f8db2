package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RECOMMENDER_CONFIG is set
//  3. env (prefix RECOMMENDER_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("RECOMMENDER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: RECOMMENDER_ADDR, RECOMMENDER_TOP_N_DEFAULT, ...
	// Map env keys like RECOMMENDER_TOP_N_DEFAULT -> top_n_default (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("RECOMMENDER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "recommender_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TopNDefault < 1:
		return fmt.Errorf("%w: top_n_default must be >= 1", ErrInvalidConfig)
	case c.MaxTopN < c.TopNDefault:
		return fmt.Errorf("%w: max_top_n must be >= top_n_default", ErrInvalidConfig)
	case c.SemiActiveMinSimilarityDefault < 0 || c.SemiActiveMinSimilarityDefault > 1:
		return fmt.Errorf("%w: semi_active_min_similarity_default must be in [0,1]", ErrInvalidConfig)
	case c.DefaultSource != "db" && c.DefaultSource != "json":
		return fmt.Errorf("%w: default_source must be db or json", ErrInvalidConfig)
	}
	return nil
}
