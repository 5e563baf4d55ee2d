package schemascope

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed dataset/schema.yaml
var defaultDataset []byte

// yamlDataset is the YAML representation of the schema dataset.
type yamlDataset struct {
	Objects []*Object `yaml:"objects"`
}

// LoadDefaultModel builds the Model from the bundled dataset.
func LoadDefaultModel() (*Model, error) {
	return parseDataset(defaultDataset)
}

// LoadModel loads a Model from a YAML dataset file. The path can be absolute
// or relative to baseDir. An empty path falls back to the bundled dataset.
func LoadModel(path, baseDir string) (*Model, error) {
	if path == "" {
		return LoadDefaultModel()
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	return parseDataset(data)
}

func parseDataset(data []byte) (*Model, error) {
	var ds yamlDataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	if len(ds.Objects) == 0 {
		return nil, ErrEmptyDataset
	}

	for i, obj := range ds.Objects {
		if !knownObjectType(obj.Type) {
			return nil, fmt.Errorf("object %d (%s): %q: %w", i, obj.Name, obj.Type, ErrUnknownObjectType)
		}
	}

	return NewModel(ds.Objects)
}

func knownObjectType(t ObjectType) bool {
	switch t {
	case TypeTable, TypeEnum, TypeView, TypeFunction, TypeTrigger:
		return true
	default:
		return false
	}
}
