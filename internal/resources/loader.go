package resources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a custom catalog.
type catalogFile struct {
	Resources []Resource `yaml:"resources"`
}

// Load reads a YAML catalog file and validates it.
//
// Example file:
//
//	resources:
//	  - kind: handbook
//	    prefix: "!b"
//	    name: Block Editor
//	    url: https://developer.wordpress.org/block-editor/
//	    key: b
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog, err := New(file.Resources)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}
