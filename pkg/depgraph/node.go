package depgraph

import (
	"fmt"
	"sync"
	"weak"
)

// Node wraps a single value of T together with its adjacency. Nodes are
// created exclusively by [Graph.GetOrAdd]; the zero value is not usable.
//
// Children are strong references: a node keeps the things it depends on
// alive. Parents are weak back-references, so the two sides of an edge never
// own each other and the registry remains the sole owner of record.
type Node[T comparable] struct {
	value T

	mu       sync.RWMutex
	children []*Node[T]
	parents  []weak.Pointer[Node[T]]
}

func newNode[T comparable](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the wrapped value. Values are immutable after construction.
func (n *Node[T]) Value() T {
	return n.value
}

// Children returns a snapshot of the node's direct dependencies.
func (n *Node[T]) Children() []*Node[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// Parents returns a snapshot of the node's direct dependents. Weak links
// whose target is gone are skipped.
func (n *Node[T]) Parents() []*Node[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node[T], 0, len(n.parents))
	for _, link := range n.parents {
		if p := link.Value(); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// String formats the wrapped value with %v.
func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}

// parentLinks returns the raw weak links for the ancestry walk.
func (n *Node[T]) parentLinks() []weak.Pointer[Node[T]] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]weak.Pointer[Node[T]], len(n.parents))
	copy(out, n.parents)
	return out
}

func (n *Node[T]) addChild(c *Node[T]) {
	n.mu.Lock()
	n.children = append(n.children, c)
	n.mu.Unlock()
}

func (n *Node[T]) addParent(p *Node[T]) {
	n.mu.Lock()
	n.parents = append(n.parents, weak.Make(p))
	n.mu.Unlock()
}
