package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Category is how a discovered file is registered with the project.
type Category string

const (
	// CategorySource files are compiled by the sources phase.
	CategorySource Category = "source"
	// CategoryConfig files are referenced by the group only.
	CategoryConfig Category = "config"
	// CategoryResource files are copied by the resources phase.
	CategoryResource Category = "resource"
)

var categoryByExt = map[string]Category{
	".h":            CategorySource,
	".m":            CategorySource,
	".plist":        CategoryConfig,
	".entitlements": CategoryConfig,
}

// File is one entry of the extension directory.
type File struct {
	Name string
	Path string
	Ext  string
}

// Files holds discovered files per category, in directory order.
type Files struct {
	Source   []File
	Config   []File
	Resource []File
}

// Substitutable returns the files that receive preference substitution:
// config files first, then sources.
func (f Files) Substitutable() []File {
	out := make([]File, 0, len(f.Config)+len(f.Source))
	out = append(out, f.Config...)
	return append(out, f.Source...)
}

// Len returns the number of discovered files.
func (f Files) Len() int {
	return len(f.Source) + len(f.Config) + len(f.Resource)
}

// Classify returns the category of name. Hidden names (leading '.') report
// ok=false and are never registered.
func Classify(name string) (Category, bool) {
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	if c, ok := categoryByExt[filepath.Ext(name)]; ok {
		return c, true
	}
	return CategoryResource, true
}

// Discover lists dir and buckets its non-hidden entries by category.
// Subdirectories (asset catalogs, .lproj folders) are resources.
func Discover(dir string) (Files, error) {
	var files Files

	abs, err := filepath.Abs(dir)
	if err != nil {
		return files, fmt.Errorf("resolving %s: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return files, fmt.Errorf("reading extension directory %s: %w", abs, err)
	}

	for _, e := range entries {
		category, ok := Classify(e.Name())
		if !ok {
			continue
		}
		f := File{
			Name: e.Name(),
			Path: filepath.Join(abs, e.Name()),
			Ext:  filepath.Ext(e.Name()),
		}
		switch category {
		case CategorySource:
			files.Source = append(files.Source, f)
		case CategoryConfig:
			files.Config = append(files.Config, f)
		default:
			files.Resource = append(files.Resource, f)
		}
	}
	return files, nil
}
