// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, edge events, depth limiting,
// neighbor filtering and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// NoParent marks a DFS root in Result.Parent and in OnExit.
const NoParent = -1

var (
	// ErrIndexedNil is returned when a nil *core.Indexed is passed to DFS.
	ErrIndexedNil = errors.New("dfs: indexed graph is nil")

	// ErrStartVertexNotFound indicates that the start index is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(ix, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; checked once per discovered vertex.
	Ctx context.Context

	// OnVisit is invoked when a vertex is discovered (pre-order).
	OnVisit func(v int) error

	// OnExit is invoked after all descendants of v are explored and before v
	// is appended to Result.Order. parent is NoParent for roots.
	OnExit func(v, parent int) error

	// OnTreeEdge is invoked for parent → child before child is discovered.
	OnTreeEdge func(parent, child int) error

	// OnBackEdge is invoked when v meets an ancestor other than its parent.
	OnBackEdge func(v, ancestor int) error

	// OnForwardEdge is invoked when v meets a descendant that is already
	// finished; it is the same undirected edge as an earlier OnBackEdge.
	OnForwardEdge func(v, descendant int) error

	// MaxDepth, if non-negative, limits the depth of discovered vertices.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor index of v.
	// Return false to ignore the edge entirely.
	FilterNeighbor func(v, neighbor int) bool

	// FullTraversal restarts DFS from every unvisited vertex in index order.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit, no filter and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v, parent int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithOnTreeEdge installs fn as the tree-edge hook.
func WithOnTreeEdge(fn func(parent, child int) error) Option {
	return func(o *Options) { o.OnTreeEdge = fn }
}

// WithOnBackEdge installs fn as the back-edge hook.
func WithOnBackEdge(fn func(v, ancestor int) error) Option {
	return func(o *Options) { o.OnBackEdge = fn }
}

// WithOnForwardEdge installs fn as the forward-edge hook.
func WithOnForwardEdge(fn func(v, descendant int) error) Option {
	return func(o *Options) { o.OnForwardEdge = fn }
}

// WithMaxDepth limits traversal depth to limit. A limit of 0 means only the
// start vertex is visited. Panics on limit < 0.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic("dfs: WithMaxDepth(<0)")
	}
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs an edge filter.
// Skipped edges are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(v, neighbor int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal. Slices are indexed
// by dense node index; unvisited vertices hold -1 in PreNum, Parent and Depth.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Pre records vertices in discovery order.
	Pre []int

	// PreNum maps a vertex to its position in Pre, or -1.
	PreNum []int

	// Parent maps a vertex to its DFS-tree parent, NoParent for roots.
	Parent []int

	// Depth maps a vertex to its tree depth, -1 if unvisited.
	Depth []int

	// Size maps a vertex to the number of vertices in its DFS subtree,
	// itself included; 0 if unvisited.
	Size []int

	// Roots lists tree roots in discovery order.
	Roots []int

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.PreNum) && r.PreNum[v] >= 0
}

// IsAncestor reports whether a is an ancestor of d (or d itself) in the DFS
// forest, using the subtree interval [PreNum[a], PreNum[a]+Size[a]).
// Complexity: O(1).
func (r *Result) IsAncestor(a, d int) bool {
	if !r.Visited(a) || !r.Visited(d) {
		return false
	}

	return r.PreNum[a] <= r.PreNum[d] && r.PreNum[d] < r.PreNum[a]+r.Size[a]
}
