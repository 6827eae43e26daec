// Package project locates the Go module the demo runs in and loads its
// tabscroll.yaml.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// DefaultAppName is used when no module path gives a better one.
const DefaultAppName = "tabscroll"

// Resolved contains resolved project values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Config     tabscroll.Config
}

// Resolve reads go.mod and the optional tabscroll.yaml in dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := tabscroll.LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    defaultAppName(modulePath, dir),
		Config:     cfg,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(dir)
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultAppName is the last element of the module path without its major
// version suffix, falling back to the directory name.
func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return DefaultAppName
	}
	return base
}
