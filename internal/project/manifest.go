package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Package is the subset of package.json this tool reads.
type Package struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// readPackage reads and decodes root/package.json.
func readPackage(root string) (*Package, error) {
	path := filepath.Join(root, PackageFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, PackageFile, err)
	}
	return &pkg, nil
}

// HasDependency reports whether name appears in dependencies or devDependencies.
func (p *Package) HasDependency(name string) bool {
	if v, ok := p.Dependencies[name]; ok && v != "" {
		return true
	}
	if v, ok := p.DevDependencies[name]; ok && v != "" {
		return true
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
