// SPDX-License-Identifier: MIT
// Package: dmrgraph/analysis

package analysis

import (
	"errors"
	"time"

	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/decompose"
	"github.com/katalvlaran/dmrgraph/domset"
	"github.com/katalvlaran/dmrgraph/edgeclass"
)

var (
	// ErrGraphNil is returned when Run receives a nil graph.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrNoAnalysis marks a timepoint whose graph has no edges.
	ErrNoAnalysis = errors.New("analysis: no analysis possible")

	// ErrDuplicateTimepoint is returned by RunAll for repeated names.
	ErrDuplicateTimepoint = errors.New("analysis: duplicate timepoint")
)

// Status summarizes how far the pipeline got.
type Status int

const (
	// StatusComplete means every stage ran on the full biclique set.
	StatusComplete Status = iota
	// StatusPartial means enumeration hit its budget.
	StatusPartial
	// StatusNoAnalysis means the graph had no edges.
	StatusNoAnalysis
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	case StatusNoAnalysis:
		return "no_analysis"
	default:
		return "unknown"
	}
}

// Timepoint identifies one graph of a run.
type Timepoint struct {
	Name string

	// Offset is added to DMR IDs when rows are persisted.
	Offset int
}

// Input is one timepoint's worth of records for RunAll.
type Input struct {
	Timepoint Timepoint
	Records   []builder.Record
}

// Result bundles everything computed for one timepoint.
type Result struct {
	Timepoint Timepoint
	Status    Status

	// Err is non-nil for StatusNoAnalysis (wraps ErrNoAnalysis) and
	// StatusPartial (wraps biclique.ErrEnumerationBudgetExceeded).
	Err error

	Graph  *core.Graph
	Stats  *core.GraphStats
	Report *builder.Report // set by Analyze and RunAll

	Decomposition *decompose.Decomposition
	Hubs          []core.NodeRef
	Bicliques     *biclique.Result
	Edges         *edgeclass.Result

	// ComponentEdges holds edge classification counts per connected component.
	ComponentEdges []edgeclass.Group

	Domination *domset.Result
	Elapsed    time.Duration
}

// Analyzed reports whether the pipeline produced bicliques.
func (r *Result) Analyzed() bool {
	return r != nil && r.Status != StatusNoAnalysis
}
