// Package depgraph provides a concurrent, value-keyed directed acyclic
// dependency graph.
//
// # Overview
//
// A [Graph] is a registry of nodes, each wrapping one value of a comparable
// type T. The registry guarantees that equal values map to the same node:
// [Graph.GetOrAdd] returns the existing handle when one exists, so handles
// can be compared with == to decide whether two lookups named the same node.
//
// Edges express "parent depends on child". A node holds strong references to
// its children and weak back-references to its parents, which keeps
// ownership acyclic even though the adjacency is bidirectional. The registry
// is the owner of record: nodes live exactly as long as the graph that
// created them.
//
// # Basic Usage
//
// Create a graph with [New], obtain nodes with [Graph.GetOrAdd], and connect
// them with [Graph.AddEdge]:
//
//	g := depgraph.New[string]()
//	app, _ := g.GetOrAdd("app")
//	lib, _ := g.GetOrAdd("lib")
//	if err := g.AddEdge(app, lib); err != nil {
//		// edge rejected, adjacency unchanged
//	}
//
// AddEdge refuses edges that would damage the structure: a self-edge fails
// with [ErrSameNode] and an edge that would close a cycle fails with
// [ErrCyclic]. Rejected edges leave both nodes exactly as they were.
//
// # Cycle Detection
//
// Instead of validating the whole graph after the fact, AddEdge walks upward
// from the prospective parent through parent links before anything is
// installed. If the prospective child is found among the ancestors the edge
// is rejected. The walk upgrades each weak link for the visit and silently
// skips links whose target is gone. Wide ancestries are walked with parallel
// fan-out, which changes the cost of the check but never its answer.
//
// # Concurrency
//
// All methods are safe for concurrent use. Edge installation is atomic with
// respect to the ancestry checks of other AddEdge calls, so two goroutines
// racing AddEdge(a, b) and AddEdge(b, a) can never both succeed; at least
// one observes [ErrCyclic].
//
// A panic that escapes one of the graph's critical sections (possible when T
// is an interface type whose dynamic values do not support ==) poisons the
// graph: the panicking call and every call after it return [ErrPoisoned]
// rather than crashing the process or silently continuing on damaged state.
//
// # Limits
//
// The graph is append-only. There is no node or edge removal, no traversal
// API beyond the internal ancestry check, and no serialization; rendering
// lives in the render package.
package depgraph
