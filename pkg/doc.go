// Package pkg provides the core libraries for depgraph.
//
// # Overview
//
// Depgraph models "depends on" relationships as a directed acyclic graph
// with value-keyed node identity: inserting the same value twice yields the
// same node, and edges that would close a cycle are rejected at insert time.
// The pkg directory is organized into five areas:
//
//  1. [depgraph] - The graph itself (typed nodes, edge insertion, cycle checks)
//  2. [manifest] - TOML component manifests and graph construction
//  3. [render] - Graphviz DOT generation and SVG/PNG rasterization
//  4. [currency] - Greedy decomposition of amounts into bills and coins
//  5. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through depgraph:
//
//	manifest.toml
//	         ↓
//	    [manifest] package (parse + validate)
//	         ↓
//	    [depgraph] package (nodes, edges, acyclicity)
//	         ↓
//	    [render] package (DOT → SVG/PNG)
//
// # Quick Start
//
// Build a graph from a manifest and render it:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/depgraph/pkg/manifest"
//	    "github.com/matzehuels/depgraph/pkg/render"
//	)
//
//	// 1. Parse the manifest
//	m, _ := manifest.Parse("shop.toml")
//
//	// 2. Build the graph (rejects self-references and cycles)
//	g, _ := m.Build(manifest.BuildOptions{})
//
//	// 3. Render to SVG
//	dot := render.ToDOT(g)
//	svg, _ := render.SVG(context.Background(), dot)
//
// Or use the graph directly with any comparable value type:
//
//	g := depgraph.New[string]()
//	app, _ := g.GetOrAdd("app")
//	lib, _ := g.GetOrAdd("lib")
//	_ = g.AddEdge(app, lib)
//
// # Main Packages
//
// [depgraph] - Generic dependency graph. Values are deduplicated on insert,
// node handles stay valid for the life of the graph, and AddEdge walks the
// ancestry to keep the graph acyclic. Failed operations leave the graph
// unchanged.
//
// [manifest] - TOML manifest format mapping component names to requirement
// lists. Build produces a deterministic graph, skipping duplicate
// requirements and surfacing graph errors with the offending edge.
//
// [render] - DOT text generation plus SVG and PNG rasterization via
// go-graphviz. Output is deterministic for equal graphs.
//
// [currency] - Denomination catalogs (MXN, JPY, CNY) and greedy largest-first
// decomposition in integer hundredths.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/depgraph/...   # Specific package
//	go test -run Example         # Examples only
//
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/depgraph/pkg/depgraph
// [manifest]: https://pkg.go.dev/github.com/matzehuels/depgraph/pkg/manifest
// [render]: https://pkg.go.dev/github.com/matzehuels/depgraph/pkg/render
// [currency]: https://pkg.go.dev/github.com/matzehuels/depgraph/pkg/currency
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/depgraph/pkg/buildinfo
package pkg
