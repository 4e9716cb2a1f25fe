package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a generation config from a YAML file. Missing fields keep
// their defaults; the result is normalized before return.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if cfg.Transport != "" {
		mode, err := TransportModeFromString(string(cfg.Transport))
		if err != nil {
			return Config{}, err
		}
		cfg.Transport = mode
	}
	cfg.Layout = LayoutFromString(string(cfg.Layout))
	cfg.Normalize()
	return cfg, nil
}

// LoadProject loads a config from a project directory. It looks for
// city.yaml in the given directory.
func LoadProject(projectDir string) (Config, error) {
	return Load(filepath.Join(projectDir, "city.yaml"))
}
