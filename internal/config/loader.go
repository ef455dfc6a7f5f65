package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config location, relative to the working directory.
const LocalPath = "configs/simon.yaml"

// LoadSimon loads the Simon Says configuration and validates it.
// Search order: customPath -> ~/.simon/config.yaml -> ./configs/simon.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped.
func LoadSimon(customPath string) (SimonConfig, error) {
	cfg, _, err := LoadSimonFrom(customPath)
	return cfg, err
}

// LoadSimonFrom is LoadSimon that also reports where the config came from.
// The source is "embedded" when no file was used.
func LoadSimonFrom(customPath string) (SimonConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SimonConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SimonConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return finish(cfg, path)
		}
	}

	cfg, err := parse(defaultSimonYAML)
	if err != nil {
		cfg = DefaultSimonConfig()
	}
	return finish(cfg, "embedded")
}

func parse(data []byte) (SimonConfig, error) {
	cfg := DefaultSimonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SimonConfig{}, err
	}
	return cfg, nil
}

func finish(cfg SimonConfig, source string) (SimonConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return SimonConfig{}, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SimonConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", filename)
}
