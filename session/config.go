package session

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable session settings, read from a YAML file.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt"`
	// HistoryFile stores the line-editing history; empty disables it.
	HistoryFile string `yaml:"history_file"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
	// Start is the expression the session opens with.
	Start string `yaml:"start"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Prompt: "> ",
		Start:  "F",
	}
}

// LoadConfig reads the configuration at path. A missing file is not an
// error; the defaults are returned instead.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	if config.Prompt == "" {
		config.Prompt = DefaultConfig().Prompt
	}
	if config.Start == "" {
		config.Start = DefaultConfig().Start
	}
	return config, nil
}

// WriteConfig writes config to path in YAML form.
func WriteConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
