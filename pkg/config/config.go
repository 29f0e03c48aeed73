// Package config holds the tunable constants of the analysis pipeline.
// Everything ships with working defaults; a YAML file overrides fields
// selectively.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type NumericConfig struct {
	// MinGroupingDigits is the digit count from which a number must use
	// thousands separators.
	MinGroupingDigits int `yaml:"min_grouping_digits"`
	// YearMin/YearMax bound the 4-digit numbers treated as calendar
	// years and therefore exempt from the grouping requirement.
	YearMin int `yaml:"year_min"`
	YearMax int `yaml:"year_max"`
}

type ImageConfig struct {
	AspectWidth     int      `yaml:"aspect_width"`
	AspectHeight    int      `yaml:"aspect_height"`
	AspectTolerance float64  `yaml:"aspect_tolerance"`
	AllowedFormats  []string `yaml:"allowed_formats"`
}

type RulesConfig struct {
	ExtraSlang []string      `yaml:"extra_slang"`
	Numeric    NumericConfig `yaml:"numeric"`
	Image      ImageConfig   `yaml:"image"`
}

type MergeConfig struct {
	// EvidencePrefixLen is the rune length of the evidence prefix used
	// in the deduplication key.
	EvidencePrefixLen int `yaml:"evidence_prefix_len"`
}

type AIConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Config struct {
	EngineVersion string      `yaml:"engine_version"`
	Rules         RulesConfig `yaml:"rules"`
	Merge         MergeConfig `yaml:"merge"`
	AI            AIConfig    `yaml:"ai"`
}

func Default() Config {
	return Config{
		EngineVersion: "rule-engine/2.1.0",
		Rules: RulesConfig{
			Numeric: NumericConfig{
				MinGroupingDigits: 4,
				YearMin:           1000,
				YearMax:           2999,
			},
			Image: ImageConfig{
				AspectWidth:     16,
				AspectHeight:    9,
				AspectTolerance: 0.02,
				AllowedFormats:  []string{"jpg", "jpeg", "png", "webp"},
			},
		},
		Merge: MergeConfig{EvidencePrefixLen: 64},
		AI: AIConfig{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 30,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing path is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
