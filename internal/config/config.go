package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// DecimalSeparator is "," or "."; Brazilian carrier exports default to ",".
	DecimalSeparator string `mapstructure:"decimal_separator" yaml:"decimal_separator"`
	// WeightMaxSentinel substitutes for an absent upper weight bound.
	WeightMaxSentinel float64 `mapstructure:"weight_max_sentinel" yaml:"weight_max_sentinel"`
	// PreviewLimit caps on-screen option previews.
	PreviewLimit int `mapstructure:"preview_limit" yaml:"preview_limit"`
	// SampleLimit caps options extracted for exports.
	SampleLimit int `mapstructure:"sample_limit" yaml:"sample_limit"`
	// DataDir holds persisted mappings; default ~/.fretemap/mappings.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// SQLitePath is the default export database; default ~/.fretemap/rates.db.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.fretemap/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".fretemap")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("FRETEMAP")
	v.AutomaticEnv()

	v.SetDefault("decimal_separator", ",")
	v.SetDefault("weight_max_sentinel", 9999.0)
	v.SetDefault("preview_limit", 10)
	v.SetDefault("sample_limit", 500)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".fretemap")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.DataDir == "" || c.SQLitePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		if c.DataDir == "" {
			c.DataDir = filepath.Join(home, ".fretemap", "mappings")
		}
		if c.SQLitePath == "" {
			c.SQLitePath = filepath.Join(home, ".fretemap", "rates.db")
		}
	}
	return &c, nil
}

// DecimalRune converts the configured separator to the rune the coercer
// expects, defaulting to comma on anything unexpected.
func (c *Global) DecimalRune() rune {
	if c != nil && c.DecimalSeparator == "." {
		return '.'
	}
	return ','
}
