// Package manifest reads TOML dependency manifests and builds dependency
// graphs from them.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed dependency manifest.
//
// The on-disk format names a package and lists, per component, the
// components it requires:
//
//	[package]
//	name = "example"
//
//	[dependencies]
//	api   = ["auth", "store"]
//	auth  = ["crypto"]
//	store = ["crypto"]
//	docs  = []
//
// A key with an empty list declares a component without dependencies.
// Components that only ever appear on the right-hand side need no own key.
type Manifest struct {
	Name         string
	Dependencies map[string][]string
}

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string][]string `toml:"dependencies"`
}

// Parse reads and decodes the manifest at path. A manifest without a
// package name falls back to the file stem.
func Parse(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// ParseBytes decodes a manifest from raw TOML.
func ParseBytes(data []byte) (*Manifest, error) {
	var f manifestFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for name, reqs := range f.Dependencies {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty component name")
		}
		for _, req := range reqs {
			if strings.TrimSpace(req) == "" {
				return nil, fmt.Errorf("component %s: empty requirement", name)
			}
		}
	}
	m := &Manifest{
		Name:         f.Package.Name,
		Dependencies: f.Dependencies,
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string][]string{}
	}
	return m, nil
}

// Components returns every component the manifest names, declared or only
// required, sorted.
func (m *Manifest) Components() []string {
	set := make(map[string]struct{}, len(m.Dependencies))
	for name, reqs := range m.Dependencies {
		set[name] = struct{}{}
		for _, req := range reqs {
			set[req] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
