package depgraph

import "errors"

// Sentinel errors returned by [Graph.GetOrAdd] and [Graph.AddEdge]. The
// returned errors wrap these values together with the offending node value,
// so callers match them with [errors.Is].
var (
	// ErrSameNode is returned by [Graph.AddEdge] when parent and child are
	// the same node. Identity means pointer identity: because equal values
	// share one node, a "different" handle with an equal value is the same
	// violation.
	ErrSameNode = errors.New("can't add edge to itself")

	// ErrCyclic is returned by [Graph.AddEdge] when the child is already
	// referenced in the parent's ancestry and the edge would close a cycle.
	ErrCyclic = errors.New("node already referenced in its ancestry")

	// ErrPoisoned is returned by every operation once a panic has escaped a
	// critical section. The graph is permanently marked because its internal
	// state can no longer be trusted.
	ErrPoisoned = errors.New("graph poisoned by earlier panic")
)
