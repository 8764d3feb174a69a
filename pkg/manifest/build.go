package manifest

import (
	"fmt"
	"sort"

	"github.com/matzehuels/depgraph/pkg/depgraph"
)

// BuildOptions configures graph construction.
type BuildOptions struct {
	Logger func(string, ...any) // Notice callback for skipped input (optional)
}

// WithDefaults returns a copy of BuildOptions with zero values replaced.
func (o BuildOptions) WithDefaults() BuildOptions {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Build constructs the dependency graph the manifest describes. Components
// are visited in sorted order and repeated requirements within one
// component are skipped, so a given manifest always produces the same
// graph. Errors from the graph come back wrapped with the offending edge,
// still matchable with errors.Is.
func (m *Manifest) Build(opts BuildOptions) (*depgraph.Graph[string], error) {
	opts = opts.WithDefaults()
	g := depgraph.New[string]()

	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		parent, err := g.GetOrAdd(name)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", name, err)
		}
		seen := make(map[string]struct{}, len(m.Dependencies[name]))
		for _, req := range m.Dependencies[name] {
			if _, dup := seen[req]; dup {
				opts.Logger("duplicate requirement %s -> %s, skipping", name, req)
				continue
			}
			seen[req] = struct{}{}

			child, err := g.GetOrAdd(req)
			if err != nil {
				return nil, fmt.Errorf("component %s: %w", req, err)
			}
			if err := g.AddEdge(parent, child); err != nil {
				return nil, fmt.Errorf("edge %s -> %s: %w", name, req, err)
			}
		}
	}
	return g, nil
}
