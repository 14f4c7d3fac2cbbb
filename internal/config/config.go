package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"logweave/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" toml:"level"`
		Format string `yaml:"format" toml:"format"`
		Color  string `yaml:"color" toml:"color"`
	} `yaml:"logging" toml:"logging"`
	Chunks struct {
		Lines       int     `yaml:"lines" toml:"lines"`
		Shadow      string  `yaml:"shadow" toml:"shadow"`
		ShadowRatio float64 `yaml:"shadowRatio" toml:"shadowRatio"`
		LogType     string  `yaml:"logType" toml:"logType"`
	} `yaml:"chunks" toml:"chunks"`
	Window struct {
		MergeLines int `yaml:"mergeLines" toml:"mergeLines"`
	} `yaml:"window" toml:"window"`
	Search struct {
		CaseInsensitive bool `yaml:"caseInsensitive" toml:"caseInsensitive"`
		Regex           bool `yaml:"regex" toml:"regex"`
		Workers         int  `yaml:"workers" toml:"workers"`
	} `yaml:"search" toml:"search"`
	Highlight struct {
		Begin string `yaml:"begin" toml:"begin"`
		Match string `yaml:"match" toml:"match"`
		End   string `yaml:"end" toml:"end"`
	} `yaml:"highlight" toml:"highlight"`
	Style struct {
		Selector string `yaml:"selector" toml:"selector"`
	} `yaml:"style" toml:"style"`
	Follow struct {
		Debounce time.Duration `yaml:"debounce" toml:"debounce"`
	} `yaml:"follow" toml:"follow"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat
	cfg.Logging.Color = ColorAuto

	cfg.Chunks.Lines = ChunkLines
	cfg.Chunks.Shadow = ShadowNever
	cfg.Chunks.ShadowRatio = ShadowRatio
	cfg.Chunks.LogType = LogTypeText

	cfg.Window.MergeLines = MergeLines

	cfg.Search.Workers = SearchWorkers

	cfg.Highlight.Begin = HighlightBegin
	cfg.Highlight.Match = HighlightMatch
	cfg.Highlight.End = HighlightEnd

	cfg.Style.Selector = StyleSelector

	cfg.Follow.Debounce = FollowDebounce

	return cfg
}

// Load loads the configuration from the default config file
func Load() (*Config, error) {
	return LoadFile(ConfigFile)
}

// LoadFile loads the configuration from path, falling back to defaults when the file does not exist
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	v := viper.New()
	v.SetConfigType(configType(path))

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Template renders the default configuration as YAML
func Template() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(DefaultConfig()); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// TOMLTemplate renders the default configuration as TOML
func TOMLTemplate() ([]byte, error) {
	return toml.Marshal(DefaultConfig())
}

// WriteTemplate writes the default configuration to path unless it already exists.
// A ".toml" extension selects TOML, anything else YAML.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", errors.ErrConfigExists, path)
	}

	render := Template
	if configType(path) == "toml" {
		render = TOMLTemplate
	}

	data, err := render()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// configType maps a config path to its viper config type
func configType(path string) string {
	if filepath.Ext(path) == ".toml" {
		return "toml"
	}

	return "yaml"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateChunks(); err != nil {
		return err
	}

	switch c.Logging.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: '%s' (must be 'auto', 'always', or 'never')", errors.ErrInvalidColorMode, c.Logging.Color)
	}

	if c.Window.MergeLines < c.Chunks.Lines {
		return errors.ErrInvalidMergeLines
	}

	if c.Search.Workers <= 0 {
		return errors.ErrInvalidWorkers
	}

	if c.Highlight.Match == "" {
		return errors.ErrHighlightClassEmpty
	}

	if c.Follow.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	return nil
}

// validateChunks validates chunking settings
func (c *Config) validateChunks() error {
	if c.Chunks.Lines <= 0 {
		return errors.ErrInvalidChunkLines
	}

	switch c.Chunks.Shadow {
	case ShadowNever, ShadowAlways, ShadowAuto:
	default:
		return fmt.Errorf("%w: '%s' (must be 'never', 'always', or 'auto')", errors.ErrInvalidShadowPolicy, c.Chunks.Shadow)
	}

	if c.Chunks.ShadowRatio < 0 || c.Chunks.ShadowRatio > 1 {
		return errors.ErrInvalidShadowRatio
	}

	switch c.Chunks.LogType {
	case LogTypeStdio, LogTypeText:
	default:
		return fmt.Errorf("%w: '%s' (must be 's' or 't')", errors.ErrInvalidLogType, c.Chunks.LogType)
	}

	return nil
}

// LogType returns the chunk parser tag for the configured log type
func (c *Config) LogType() byte {
	return c.Chunks.LogType[0]
}
