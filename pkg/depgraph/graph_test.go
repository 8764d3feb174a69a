package depgraph

import (
	"errors"
	"sync"
	"testing"
)

func TestGetOrAddIdentity(t *testing.T) {
	g := New[int]()

	a, err := g.GetOrAdd(1)
	if err != nil {
		t.Fatalf("GetOrAdd(1): %v", err)
	}
	b, err := g.GetOrAdd(1)
	if err != nil {
		t.Fatalf("GetOrAdd(1) again: %v", err)
	}
	if a != b {
		t.Errorf("GetOrAdd(1) returned distinct handles %p and %p", a, b)
	}

	c, err := g.GetOrAdd(2)
	if err != nil {
		t.Fatalf("GetOrAdd(2): %v", err)
	}
	if a == c {
		t.Error("distinct values share a handle")
	}
	if got := c.Value(); got != 2 {
		t.Errorf("Value() = %d, want 2", got)
	}
}

func TestGetOrAddNoDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{name: "Empty", values: nil, want: 0},
		{name: "Distinct", values: []string{"a", "b", "c"}, want: 3},
		{name: "AllEqual", values: []string{"a", "a", "a", "a"}, want: 1},
		{name: "Interleaved", values: []string{"a", "b", "a", "c", "b", "a"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			for _, v := range tt.values {
				if _, err := g.GetOrAdd(v); err != nil {
					t.Fatalf("GetOrAdd(%q): %v", v, err)
				}
			}
			if got := g.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddEdgeSelf(t *testing.T) {
	g := New[int]()
	n, _ := g.GetOrAdd(42)

	err := g.AddEdge(n, n)
	if !errors.Is(err, ErrSameNode) {
		t.Fatalf("AddEdge(n, n) = %v, want ErrSameNode", err)
	}
	if got := len(n.Children()); got != 0 {
		t.Errorf("children after rejected self-edge = %d, want 0", got)
	}
	if got := len(n.Parents()); got != 0 {
		t.Errorf("parents after rejected self-edge = %d, want 0", got)
	}

	// Equal values are the same node, so a "different" handle with the
	// same value is still a self-edge.
	m, _ := g.GetOrAdd(42)
	if err := g.AddEdge(n, m); !errors.Is(err, ErrSameNode) {
		t.Errorf("AddEdge over equal values = %v, want ErrSameNode", err)
	}
}

func TestAddEdgeCycle(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]int // installed before the attempt
		from  int
		to    int
	}{
		{name: "DirectBackEdge", edges: [][2]int{{1, 2}}, from: 2, to: 1},
		{name: "TransitiveBackEdge", edges: [][2]int{{1, 2}, {2, 3}}, from: 3, to: 1},
		{name: "MidChainBackEdge", edges: [][2]int{{1, 2}, {2, 3}, {3, 4}}, from: 4, to: 2},
		{name: "DiamondClose", edges: [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}}, from: 4, to: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[int]()
			for _, e := range tt.edges {
				p, _ := g.GetOrAdd(e[0])
				c, _ := g.GetOrAdd(e[1])
				if err := g.AddEdge(p, c); err != nil {
					t.Fatalf("AddEdge(%d, %d): %v", e[0], e[1], err)
				}
			}

			from, _ := g.GetOrAdd(tt.from)
			to, _ := g.GetOrAdd(tt.to)
			beforeChildren := len(from.Children())
			beforeParents := len(to.Parents())

			err := g.AddEdge(from, to)
			if !errors.Is(err, ErrCyclic) {
				t.Fatalf("AddEdge(%d, %d) = %v, want ErrCyclic", tt.from, tt.to, err)
			}
			if got := len(from.Children()); got != beforeChildren {
				t.Errorf("children of %d changed on failure: %d, want %d", tt.from, got, beforeChildren)
			}
			if got := len(to.Parents()); got != beforeParents {
				t.Errorf("parents of %d changed on failure: %d, want %d", tt.to, got, beforeParents)
			}
		})
	}
}

func TestDiamondCounts(t *testing.T) {
	g := New[int]()
	n1, _ := g.GetOrAdd(1)
	n2, _ := g.GetOrAdd(2)
	n3, _ := g.GetOrAdd(3)
	n4, _ := g.GetOrAdd(4)

	for _, e := range [][2]*Node[int]{{n1, n2}, {n1, n3}, {n2, n4}, {n3, n4}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v, %v): %v", e[0], e[1], err)
		}
	}

	tests := []struct {
		node         *Node[int]
		wantChildren int
		wantParents  int
	}{
		{n1, 2, 0},
		{n2, 1, 1},
		{n3, 1, 1},
		{n4, 0, 2},
	}
	for _, tt := range tests {
		if got := len(tt.node.Children()); got != tt.wantChildren {
			t.Errorf("node %v: children = %d, want %d", tt.node, got, tt.wantChildren)
		}
		if got := len(tt.node.Parents()); got != tt.wantParents {
			t.Errorf("node %v: parents = %d, want %d", tt.node, got, tt.wantParents)
		}
	}
}

func TestAddEdgeDuplicate(t *testing.T) {
	g := New[string]()
	p, _ := g.GetOrAdd("p")
	c, _ := g.GetOrAdd("c")

	if err := g.AddEdge(p, c); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	// Duplicate edges are not rejected; callers that need set semantics
	// deduplicate upstream.
	if err := g.AddEdge(p, c); err != nil {
		t.Fatalf("second AddEdge: %v", err)
	}
	if got := len(p.Children()); got != 2 {
		t.Errorf("children after duplicate edge = %d, want 2", got)
	}
}

func TestGetOrAddParallelScan(t *testing.T) {
	g := New[int]()
	handles := make(map[int]*Node[int])
	for v := 0; v < parallelScanMin+64; v++ {
		n, err := g.GetOrAdd(v)
		if err != nil {
			t.Fatalf("GetOrAdd(%d): %v", v, err)
		}
		handles[v] = n
	}

	// The registry is past the threshold now, so these lookups take the
	// chunked path. Hits must return the original handles.
	for _, v := range []int{0, 5, parallelScanMin / 2, parallelScanMin + 63} {
		n, err := g.GetOrAdd(v)
		if err != nil {
			t.Fatalf("GetOrAdd(%d): %v", v, err)
		}
		if n != handles[v] {
			t.Errorf("GetOrAdd(%d) returned a new handle", v)
		}
	}

	before := g.Len()
	if _, err := g.GetOrAdd(-1); err != nil {
		t.Fatalf("GetOrAdd(-1): %v", err)
	}
	if got := g.Len(); got != before+1 {
		t.Errorf("Len() = %d, want %d", got, before+1)
	}
}

func TestConcurrentGetOrAdd(t *testing.T) {
	const (
		goroutines = 16
		iterations = 200
		domain     = 10
	)

	g := New[int]()
	var (
		wg   sync.WaitGroup
		seen sync.Map // value -> *Node[int]
		mu   sync.Mutex
		errs []error
	)

	for w := 0; w < goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v := i % domain
				n, err := g.GetOrAdd(v)
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					return
				}
				if prev, loaded := seen.LoadOrStore(v, n); loaded && prev.(*Node[int]) != n {
					mu.Lock()
					errs = append(errs, errors.New("conflicting handles for one value"))
					mu.Unlock()
					return
				}
			}
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("concurrent GetOrAdd: %v", errs[0])
	}
	if got := g.Len(); got != domain {
		t.Errorf("Len() = %d, want %d", got, domain)
	}
}

func TestConcurrentMutualEdges(t *testing.T) {
	const rounds = 200

	for i := 0; i < rounds; i++ {
		g := New[int]()
		a, _ := g.GetOrAdd(1)
		b, _ := g.GetOrAdd(2)

		var (
			wg      sync.WaitGroup
			results [2]error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			results[0] = g.AddEdge(a, b)
		}()
		go func() {
			defer wg.Done()
			results[1] = g.AddEdge(b, a)
		}()
		wg.Wait()

		var successes, cyclic int
		for _, err := range results {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrCyclic):
				cyclic++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if successes > 1 {
			t.Fatalf("round %d: both mutual edges succeeded", i)
		}
		if cyclic < 1 {
			t.Fatalf("round %d: no cyclic rejection (successes=%d)", i, successes)
		}
	}
}

func TestPoisonedGraph(t *testing.T) {
	// With an interface type argument the registry can hold values whose
	// dynamic types do not support ==. The comparison panic must surface as
	// a typed error, and the graph must refuse further work.
	g := New[any]()

	n, err := g.GetOrAdd([]int{1}) // no comparison happens on an empty registry
	if err != nil {
		t.Fatalf("GetOrAdd on empty registry: %v", err)
	}

	if _, err := g.GetOrAdd([]int{2}); !errors.Is(err, ErrPoisoned) {
		t.Fatalf("GetOrAdd with uncomparable values = %v, want ErrPoisoned", err)
	}

	if _, err := g.GetOrAdd("fine"); !errors.Is(err, ErrPoisoned) {
		t.Errorf("GetOrAdd after poisoning = %v, want ErrPoisoned", err)
	}
	if err := g.AddEdge(n, n); !errors.Is(err, ErrPoisoned) {
		t.Errorf("AddEdge after poisoning = %v, want ErrPoisoned", err)
	}
}

func TestNodesSnapshot(t *testing.T) {
	g := New[string]()
	for _, v := range []string{"a", "b", "c"} {
		if _, err := g.GetOrAdd(v); err != nil {
			t.Fatalf("GetOrAdd(%q): %v", v, err)
		}
	}

	nodes := g.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("Nodes() = %d entries, want 3", len(nodes))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := nodes[i].Value(); got != want {
			t.Errorf("Nodes()[%d] = %q, want %q (insertion order)", i, got, want)
		}
	}

	// Mutating the snapshot must not touch the registry.
	nodes[0] = nil
	if got := g.Nodes()[0]; got == nil || got.Value() != "a" {
		t.Error("snapshot mutation leaked into the registry")
	}
}
