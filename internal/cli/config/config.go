// Package config loads the dictkit configuration from dictkit.yml with
// environment-variable overrides.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/dictkit/dictkit/extractor/interp"
	"github.com/dictkit/dictkit/extractor/textclean"
)

// Config represents the dictkit configuration.
type Config struct {
	TruncationThreshold int          `mapstructure:"truncation_threshold"`
	Output              OutputConfig `mapstructure:"output"`
	Clean               CleanConfig  `mapstructure:"clean"`
	Scan                ScanConfig   `mapstructure:"scan"`
}

// OutputConfig controls the names of the produced artifacts.
type OutputConfig struct {
	JSONName string `mapstructure:"json_name"`
}

// CleanConfig controls text normalization of extracted descriptions.
type CleanConfig struct {
	Enabled      bool              `mapstructure:"enabled"`
	Replacements map[string]string `mapstructure:"replacements"`
}

// ScanConfig controls the table-name scan.
type ScanConfig struct {
	// Pattern overrides the markdown scan regex. Empty means the default.
	Pattern string `mapstructure:"pattern"`
}

// Load loads the configuration from dictkit.yml or dictkit.yaml in the
// current directory. A missing file means defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("truncation_threshold", interp.DefaultTruncationThreshold)
	v.SetDefault("output.json_name", "tables.json")
	v.SetDefault("clean.enabled", false)
	v.SetDefault("scan.pattern", "")

	v.SetConfigName("dictkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DICTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.TruncationThreshold < 1 {
		return fmt.Errorf("truncation_threshold must be at least 1, got %d", config.TruncationThreshold)
	}
	if config.Output.JSONName == "" {
		return fmt.Errorf("output.json_name must not be empty")
	}
	return nil
}

// CleanRules converts the configured replacement map into ordered cleaner
// rules. Map keys sort lexicographically so runs are deterministic.
func (c *Config) CleanRules() []textclean.Replacement {
	keys := make([]string, 0, len(c.Clean.Replacements))
	for k := range c.Clean.Replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rules := make([]textclean.Replacement, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, textclean.Replacement{Old: k, New: c.Clean.Replacements[k]})
	}
	return rules
}
