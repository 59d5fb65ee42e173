// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to settings read from the environment, ex: KNOTFOLD_THREADS
const EnvPrefix = "KNOTFOLD"

// PairingConfig is the set of base pairing rules and their scores
type PairingConfig struct {
	// whether G-U wobble pairs are allowed
	Wobble bool `mapstructure:"wobble" json:"wobble" yaml:"wobble"`

	// the score of an A-U or C-G pair
	WatsonCrickScore int `mapstructure:"watson-crick-score" json:"watsonCrickScore" yaml:"watson-crick-score"`

	// the score of a G-U pair, only used when Wobble is set
	WobbleScore int `mapstructure:"wobble-score" json:"wobbleScore" yaml:"wobble-score"`
}

// WatsonCrickOnly returns whether only A-U and C-G pairs may form
func (p PairingConfig) WatsonCrickOnly() bool {
	return !p.Wobble
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Pairing rules and scores
	Pairing PairingConfig `mapstructure:"pairing"`

	// Threads is the number of goroutines filling the DP tables
	Threads int `mapstructure:"threads"`

	// Verbose is whether to log timings to stderr
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default settings on a viper instance. The scores
// default to one per pair so the fold score is a count of base pairs.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pairing.wobble", false)
	v.SetDefault("pairing.watson-crick-score", 1)
	v.SetDefault("pairing.wobble-score", 1)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load decodes and validates the settings held by v. If v has a "settings"
// key, that file is merged in first.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that the scores and thread count are usable
func (c *Config) Validate() error {
	if c.Pairing.WatsonCrickScore < 0 {
		return fmt.Errorf("watson-crick-score must be >= 0, got %d", c.Pairing.WatsonCrickScore)
	}
	if c.Pairing.WobbleScore < 0 {
		return fmt.Errorf("wobble-score must be >= 0, got %d", c.Pairing.WobbleScore)
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	return nil
}
