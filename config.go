package schemascope

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .schemascope.yaml configuration file. Every field is
// optional; zero values fall back to the bundled dataset and default layout.
type Config struct {
	// Dataset is the path to a schema dataset file, relative to the config
	// file's directory. Empty means the bundled dataset.
	Dataset string `yaml:"dataset,omitempty"`

	// Layout overrides the diagram grid parameters.
	Layout LayoutConfig `yaml:"layout,omitempty"`

	// Serve configures the read-only HTTP server.
	Serve ServeConfig `yaml:"serve,omitempty"`
}

// LayoutConfig holds diagram grid settings.
type LayoutConfig struct {
	Columns     int `yaml:"columns,omitempty"`
	NodeWidth   int `yaml:"node_width,omitempty"`
	NodePadding int `yaml:"node_padding,omitempty"`
	RowHeight   int `yaml:"row_height,omitempty"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".schemascope.yaml", ".schemascope.yml", "schemascope.yaml", "schemascope.yml"}

// LoadConfig finds and loads the nearest .schemascope.yaml walking up from dir.
func LoadConfig(dir string) (*Config, string, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, "", err
	}

	return cfg, filepath.Dir(path), nil
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
