package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/viant/astmarkov/corpus"
	"github.com/viant/astmarkov/vector"
)

// EnvPrefix prefixes environment overrides, e.g. ASTMARKOV_ORDER
const EnvPrefix = "ASTMARKOV"

// Config holds pipeline settings
type Config struct {
	Language   string         `mapstructure:"language" yaml:"language"`
	Order      int            `mapstructure:"order" yaml:"order"`
	Exclusions []string       `mapstructure:"exclusions" yaml:"exclusions,omitempty"`
	Cache      bool           `mapstructure:"cache" yaml:"cache"`
	Corpus     CorpusConfig   `mapstructure:"corpus" yaml:"corpus"`
	Output     OutputConfig   `mapstructure:"output" yaml:"output"`
	Progress   ProgressConfig `mapstructure:"progress" yaml:"progress"`
}

// CorpusConfig configures the corpus loader
type CorpusConfig struct {
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
}

// OutputConfig configures vector output
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // csv or yaml
	Path   string `mapstructure:"path" yaml:"path"`     // empty writes to stdout
}

// ProgressConfig sets reporting intervals of both batch passes
type ProgressConfig struct {
	Collect   int `mapstructure:"collect" yaml:"collect"`
	Vectorize int `mapstructure:"vectorize" yaml:"vectorize"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Language: "python",
		Cache:    true,
		Corpus:   CorpusConfig{Pattern: corpus.DefaultPattern},
		Output:   OutputConfig{Format: "csv"},
		Progress: ProgressConfig{
			Collect:   vector.DefaultCollectInterval,
			Vectorize: vector.DefaultVectorizeInterval,
		},
	}
}

// Load reads configuration from path (or .astmarkov/config.yaml, ./config.yaml when empty),
// environment variables and .env files; a missing config file is not an error
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("language", cfg.Language)
	v.SetDefault("order", cfg.Order)
	v.SetDefault("exclusions", cfg.Exclusions)
	v.SetDefault("cache", cfg.Cache)
	v.SetDefault("corpus.pattern", cfg.Corpus.Pattern)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.path", cfg.Output.Path)
	v.SetDefault("progress.collect", cfg.Progress.Collect)
	v.SetDefault("progress.vectorize", cfg.Progress.Vectorize)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".astmarkov")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Order < 0 {
		return fmt.Errorf("invalid order %d: must not be negative", c.Order)
	}
	switch c.Output.Format {
	case "csv", "yaml", "yml":
	default:
		return fmt.Errorf("invalid output format %q: expected csv or yaml", c.Output.Format)
	}
	return nil
}

// loadEnvFiles loads .env files, local overrides first
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}
