package depgraph

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Tuning knobs for the parallel registry scan. Below parallelScanMin the
// sequential scan wins; above it the registry is split across GOMAXPROCS
// workers that poll for an early hit every scanStride elements. Both sides
// of the threshold behave identically.
const (
	parallelScanMin = 2048
	scanStride      = 512
)

// Graph is a registry of uniquely-valued nodes connected into a directed
// acyclic graph. The registry owns every node it hands out: handles stay
// valid for the life of the graph, and equal values map to the same handle.
// See the package documentation for the ownership and concurrency model.
//
// A Graph must be created with [New]. All methods are safe for concurrent
// use.
type Graph[T comparable] struct {
	mu    sync.RWMutex
	nodes []*Node[T]

	// edgeMu serializes AddEdge end to end, making the ancestry check and
	// the two-sided install one atomic step.
	edgeMu sync.Mutex

	poisoned atomic.Bool
}

// New returns an empty graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{}
}

// GetOrAdd returns the node holding value, creating it when none does.
// Equal values always yield the same handle, so handles compare
// meaningfully with ==.
//
// The scan for an existing node exits early on the first hit and runs in
// parallel chunks once the registry is large. The only possible error is
// [ErrPoisoned], reporting a panic recovered during value comparison
// (possible when T is an interface type whose dynamic values do not
// support ==) on this or an earlier call.
func (g *Graph[T]) GetOrAdd(value T) (node *Node[T], err error) {
	if g.poisoned.Load() {
		return nil, ErrPoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			node, err = nil, g.poison(r)
		}
	}()

	if node, err = g.lookup(value); node != nil || err != nil {
		return node, err
	}
	return g.insert(value)
}

// AddEdge records that parent depends on child, rejecting edges that would
// damage the graph. Checks run in order: parent and child being the same
// node fails with [ErrSameNode], and child already appearing in parent's
// ancestry fails with [ErrCyclic]. Only then is the edge installed on both
// sides. A failed call leaves both adjacency lists untouched.
//
// The ancestry check and the install are atomic with respect to other
// AddEdge calls: of two racing calls AddEdge(a, b) and AddEdge(b, a), at
// most one succeeds and at least one reports [ErrCyclic].
//
// Both handles must have come from this graph's GetOrAdd; feeding foreign
// handles is a caller bug the graph does not detect.
func (g *Graph[T]) AddEdge(parent, child *Node[T]) (err error) {
	if g.poisoned.Load() {
		return ErrPoisoned
	}
	defer func() {
		if r := recover(); r != nil {
			err = g.poison(r)
		}
	}()

	if parent == child {
		return fmt.Errorf("%w: %v", ErrSameNode, parent.value)
	}

	g.edgeMu.Lock()
	defer g.edgeMu.Unlock()

	found, err := g.inAncestry(parent, child)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: %v", ErrCyclic, child.value)
	}

	parent.addChild(child)
	child.addParent(parent)
	return nil
}

// Len returns the number of nodes in the registry.
func (g *Graph[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Nodes returns a snapshot of the registry in insertion order.
func (g *Graph[T]) Nodes() []*Node[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node[T], len(g.nodes))
	copy(out, g.nodes)
	return out
}

// poison marks the graph unusable and wraps the recovered value. The
// marking call and everything after it fail with [ErrPoisoned].
func (g *Graph[T]) poison(r any) error {
	g.poisoned.Store(true)
	return fmt.Errorf("%w: %v", ErrPoisoned, r)
}

func (g *Graph[T]) lookup(value T) (*Node[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.find(value)
}

// insert re-checks under the write lock: another goroutine may have added
// the value between the optimistic lookup and here.
func (g *Graph[T]) insert(value T) (*Node[T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, err := g.find(value); n != nil || err != nil {
		return n, err
	}
	n := newNode(value)
	g.nodes = append(g.nodes, n)
	return n, nil
}

// find locates the node holding value under whichever registry lock the
// caller already holds.
func (g *Graph[T]) find(value T) (*Node[T], error) {
	if len(g.nodes) < parallelScanMin {
		for _, n := range g.nodes {
			if n.value == value {
				return n, nil
			}
		}
		return nil, nil
	}
	return g.findParallel(value)
}

// findParallel splits the registry across workers. Values are unique in the
// registry, so any hit is the hit and the others can stop looking. A panic
// inside a worker (broken == on an interface-typed T) comes back as a
// poisoning error instead of crashing the process.
func (g *Graph[T]) findParallel(value T) (*Node[T], error) {
	var (
		found atomic.Pointer[Node[T]]
		eg    errgroup.Group
	)
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(g.nodes) + workers - 1) / workers
	for lo := 0; lo < len(g.nodes); lo += chunk {
		part := g.nodes[lo:min(lo+chunk, len(g.nodes))]
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = g.poison(r)
				}
			}()
			for i, n := range part {
				if i%scanStride == 0 && found.Load() != nil {
					return nil
				}
				if n.value == value {
					found.Store(n)
					return nil
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return found.Load(), nil
}
