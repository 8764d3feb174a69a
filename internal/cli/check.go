package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depgraph/pkg/depgraph"
	"github.com/matzehuels/depgraph/pkg/manifest"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	name string // override package name from the manifest
}

// newCheckCmd creates the check command for validating manifests.
// It parses a TOML manifest, builds the dependency graph, and reports the
// graph shape on success. Self-references and cycles fail the check.
func newCheckCmd() *cobra.Command {
	opts := checkOpts{}

	cmd := &cobra.Command{
		Use:   "check <manifest.toml>",
		Short: "Validate a manifest and report graph statistics",
		Long: `Validate a component manifest.

The check command parses a TOML manifest, builds the dependency graph, and
rejects self-references and cycles. On success it reports component, edge,
root, and leaf counts.

Example manifest:

  [package]
  name = "shop"

  [dependencies]
  api = ["auth", "store"]
  auth = ["store"]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "package name (overrides the manifest)")

	return cmd
}

// runCheck parses the manifest at path, builds the graph, and prints statistics.
func runCheck(ctx context.Context, path string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Checking %s", path)

	m, err := manifest.Parse(path)
	if err != nil {
		return err
	}
	if opts.name != "" {
		m.Name = opts.name
	}

	spinner := newSpinnerWithContext(ctx, "Building dependency graph...")
	spinner.Start()

	prog := newProgress(logger)
	g, err := m.Build(manifest.BuildOptions{
		Logger: func(msg string, args ...any) { logger.Warnf(msg, args...) },
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("%s has invalid dependencies", m.Name))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Built graph with %d components", g.Len()))

	stats := collectStats(g)

	printSuccess("%s is acyclic", m.Name)
	printStats(stats.nodes, stats.edges, stats.roots, stats.leaves)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("depgraph export %s -f svg -o %s.svg", path, m.Name))

	return nil
}

// graphStats summarizes the shape of a built dependency graph.
type graphStats struct {
	nodes  int
	edges  int
	roots  int // components nothing depends on
	leaves int // components with no requirements
}

// collectStats walks the graph once and counts nodes, edges, roots, and leaves.
func collectStats(g *depgraph.Graph[string]) graphStats {
	stats := graphStats{nodes: g.Len()}
	for _, n := range g.Nodes() {
		children := n.Children()
		stats.edges += len(children)
		if len(children) == 0 {
			stats.leaves++
		}
		if len(n.Parents()) == 0 {
			stats.roots++
		}
	}
	return stats
}
