// Package bfs: traversal engine.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dmrgraph/core"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	ix    *core.Indexed
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on ix starting from start,
// applying any number of functional Options.
// Returns ErrIndexedNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error. On error the partial Result is returned.
func BFS(ix *core.Indexed, start int, opts ...Option) (*Result, error) {
	if ix == nil {
		return nil, ErrIndexedNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := ix.Len()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		ix:    ix,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i], w.res.Parent[i] = -1, NoParent
	}

	w.enqueue(start, 0, NoParent)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.v, item.depth)

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, u := range w.ix.Adj[item.v] {
			if w.res.Depth[u] >= 0 || !w.opts.FilterNeighbor(item.v, u) {
				continue
			}
			w.enqueue(u, next, item.v)
		}
	}

	return nil
}
