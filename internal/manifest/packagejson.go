package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PackageJSONFile is the package metadata file name at the project root.
const PackageJSONFile = "package.json"

// Package is the subset of package.json the hook reads.
type Package struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Cordova         *CordovaBlock     `json:"cordova,omitempty"`
}

// CordovaBlock is the "cordova" section written by the Cordova CLI.
type CordovaBlock struct {
	Plugins   map[string]map[string]any `json:"plugins,omitempty"`
	Platforms []string                  `json:"platforms,omitempty"`
}

// PluginVariables returns the string variables of plugin id. A missing
// cordova section or plugin entry yields an empty map.
func (p *Package) PluginVariables(id string) map[string]string {
	vars := make(map[string]string)
	if p == nil || p.Cordova == nil {
		return vars
	}
	for k, v := range p.Cordova.Plugins[id] {
		switch val := v.(type) {
		case string:
			vars[k] = val
		case float64, bool:
			vars[k] = fmt.Sprint(val)
		}
	}
	return vars
}

// Dependency returns the version range of a dependency, searching
// dependencies before devDependencies.
func (p *Package) Dependency(name string) (string, bool) {
	if v, ok := p.Dependencies[name]; ok {
		return v, true
	}
	v, ok := p.DevDependencies[name]
	return v, ok
}

// ValidationError reports schema issues found in package.json.
type ValidationError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return fmt.Sprintf("%s failed validation: %s", e.Path, strings.Join(msgs, "; "))
}

// ReadPackage reads, validates and decodes <root>/package.json.
func ReadPackage(root string) (*Package, error) {
	path := filepath.Join(root, PackageJSONFile)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &ValidationError{Path: path, Issues: result.Issues}
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
