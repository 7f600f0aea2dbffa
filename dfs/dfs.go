// Package dfs: traversal engine.
//
// The walker keeps one frame per vertex on an explicit stack; a frame holds
// the position of the next neighbor to scan, so resuming a vertex after a child
// returns costs O(1).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/dmrgraph/core"
)

// frame is one explicit-stack entry.
type frame struct {
	v    int // vertex index
	next int // next position in ix.Adj[v]
}

// walker encapsulates state during DFS.
type walker struct {
	ix   *core.Indexed
	opts Options
	res  *Result
}

// DFS performs depth‑first search on ix. With WithFullTraversal it covers all
// components in ascending index order and start is ignored; otherwise it
// explores only the component of start.
// Returns the Result (partially filled on error) or an error if aborted by
// context or hook.
func DFS(ix *core.Indexed, start int, opts ...Option) (*Result, error) {
	// 1. Validate input
	if ix == nil {
		return nil, ErrIndexedNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := ix.Len()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, ErrStartVertexNotFound
	}

	// 3. Initialize result
	res := &Result{
		Order:  make([]int, 0, n),
		Pre:    make([]int, 0, n),
		PreNum: make([]int, n),
		Parent: make([]int, n),
		Depth:  make([]int, n),
		Size:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.PreNum[i], res.Parent[i], res.Depth[i] = -1, NoParent, -1
	}

	w := &walker{ix: ix, opts: o, res: res}

	// 4. Traverse: forest or single tree
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if res.PreNum[v] < 0 {
				if err := w.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// discover marks v as reached from parent and runs the pre-order hook.
func (w *walker) discover(v, parent, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil

		return w.opts.Ctx.Err()
	default:
	}

	w.res.PreNum[v] = len(w.res.Pre)
	w.res.Pre = append(w.res.Pre, v)
	w.res.Parent[v] = parent
	w.res.Depth[v] = depth
	w.res.Size[v] = 1
	if parent == NoParent {
		w.res.Roots = append(w.res.Roots, v)
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// traverse runs one DFS tree rooted at root.
func (w *walker) traverse(root int) error {
	if err := w.discover(root, NoParent, 0); err != nil {
		return err
	}
	stack := []frame{{v: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v
		adj := w.ix.Adj[v]

		// 1. Scan the next neighbor, if any.
		if top.next < len(adj) {
			u := adj[top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, u) {
				w.res.SkippedNeighbors++
				continue
			}

			switch {
			case w.res.PreNum[u] < 0:
				d := w.res.Depth[v] + 1
				if w.opts.MaxDepth >= 0 && d > w.opts.MaxDepth {
					continue
				}
				if w.opts.OnTreeEdge != nil {
					if err := w.opts.OnTreeEdge(v, u); err != nil {
						w.res.Order = nil

						return fmt.Errorf("dfs: OnTreeEdge hook for %d-%d: %w", v, u, err)
					}
				}
				if err := w.discover(u, v, d); err != nil {
					return err
				}
				stack = append(stack, frame{v: u})

			case u == w.res.Parent[v]:
				// The tree edge seen from the child side; reported already.

			case w.res.PreNum[u] < w.res.PreNum[v]:
				if w.opts.OnBackEdge != nil {
					if err := w.opts.OnBackEdge(v, u); err != nil {
						w.res.Order = nil

						return fmt.Errorf("dfs: OnBackEdge hook for %d-%d: %w", v, u, err)
					}
				}

			default:
				if w.opts.OnForwardEdge != nil {
					if err := w.opts.OnForwardEdge(v, u); err != nil {
						w.res.Order = nil

						return fmt.Errorf("dfs: OnForwardEdge hook for %d-%d: %w", v, u, err)
					}
				}
			}
			continue
		}

		// 2. All neighbors scanned: finish v.
		stack = stack[:len(stack)-1]
		p := w.res.Parent[v]
		if p != NoParent {
			w.res.Size[p] += w.res.Size[v]
		}
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v, p); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}
