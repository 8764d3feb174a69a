package depgraph

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// fanOutMin is the frontier width at which the ancestry walk switches from
// the sequential worklist to parallel fan-out. The parallel walk visits
// nodes in a different order but returns the same answer.
const fanOutMin = 64

// inAncestry reports whether target appears in start's ancestry, walking
// upward through parent links. Each weak link is upgraded for the visit;
// dead links are skipped. Callers hold edgeMu, so the adjacency cannot
// change mid-walk.
func (g *Graph[T]) inAncestry(start, target *Node[T]) (bool, error) {
	if start == target {
		return true, nil
	}
	frontier := make([]*Node[T], 0, 8)
	for _, link := range start.parentLinks() {
		p := link.Value()
		if p == nil {
			continue
		}
		if p == target {
			return true, nil
		}
		frontier = append(frontier, p)
	}
	if len(frontier) < fanOutMin {
		return walkUp(frontier, target), nil
	}
	return g.walkUpParallel(frontier, target)
}

// walkUp is the sequential worklist. The visited set keeps shared ancestors
// (diamonds) from being walked twice and bounds the work on dense graphs.
func walkUp[T comparable](frontier []*Node[T], target *Node[T]) bool {
	visited := make(map[*Node[T]]struct{}, len(frontier))
	stack := make([]*Node[T], 0, len(frontier))
	for _, p := range frontier {
		if _, dup := visited[p]; dup {
			continue
		}
		visited[p] = struct{}{}
		stack = append(stack, p)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, link := range n.parentLinks() {
			p := link.Value()
			if p == nil {
				continue
			}
			if p == target {
				return true
			}
			if _, dup := visited[p]; dup {
				continue
			}
			visited[p] = struct{}{}
			stack = append(stack, p)
		}
	}
	return false
}

// walkUpParallel splits a wide frontier across workers sharing one visited
// set, short-circuiting as soon as any worker sees the target.
func (g *Graph[T]) walkUpParallel(frontier []*Node[T], target *Node[T]) (bool, error) {
	var (
		visited sync.Map
		hit     atomic.Bool
		eg      errgroup.Group
	)
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(frontier) + workers - 1) / workers
	for lo := 0; lo < len(frontier); lo += chunk {
		part := frontier[lo:min(lo+chunk, len(frontier))]
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = g.poison(r)
				}
			}()
			stack := make([]*Node[T], 0, len(part))
			for _, p := range part {
				if _, dup := visited.LoadOrStore(p, struct{}{}); !dup {
					stack = append(stack, p)
				}
			}
			for len(stack) > 0 {
				if hit.Load() {
					return nil
				}
				n := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, link := range n.parentLinks() {
					p := link.Value()
					if p == nil {
						continue
					}
					if p == target {
						hit.Store(true)
						return nil
					}
					if _, dup := visited.LoadOrStore(p, struct{}{}); !dup {
						stack = append(stack, p)
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}
	return hit.Load(), nil
}
