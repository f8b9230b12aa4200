package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no -config flag is given.
const DefaultPath = "promptrun.yaml"

// Built-in defaults applied when the file or a field is absent.
const (
	DefaultModel      = "gpt-5-mini"
	DefaultOutputDir  = "ai-output"
	DefaultPromptsDir = "prompts"
	DefaultEnvFile    = ".env"
)

// Config holds the tool defaults loaded from a YAML file.
type Config struct {
	Model      string `yaml:"model"`
	OutputDir  string `yaml:"output_dir"`
	PromptsDir string `yaml:"prompts_dir"`
	EnvFile    string `yaml:"env_file"`
}

// Load reads the YAML config at path. A missing file returns the defaults;
// a malformed file is an error. Fields left empty in the file fall back to
// their defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.PromptsDir == "" {
		cfg.PromptsDir = DefaultPromptsDir
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}
	return cfg, nil
}
