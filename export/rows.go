// SPDX-License-Identifier: MIT
// Package: dmrgraph/export
//
// rows.go: persistence rows with offset DMR IDs.

package export

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dmrgraph/analysis"
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/decompose"
	"github.com/katalvlaran/dmrgraph/edgeclass"
	"github.com/katalvlaran/dmrgraph/idmap"
)

// ErrResultNil is returned when a nil or graphless result is exported.
var ErrResultNil = errors.New("export: result is nil")

// Edge statistic scopes.
const (
	ScopeGraph     = "graph"
	ScopeBiclique  = "biclique"
	ScopeComponent = "component"
)

// DMRRow is one persisted DMR.
type DMRRow struct {
	ID         int
	RawID      int
	Timepoint  string
	AreaStat   float64
	Chromosome string
	Start      int64
	End        int64
	Strand     string
	PValue     float64
	QValue     float64
	Degree     int
	Hub        bool
}

// GeneRow is one gene as seen in a timepoint.
type GeneRow struct {
	ID          int
	Symbol      string
	Description string
	Degree      int
	Hub         bool
	Split       bool
}

// ComponentRow is one component of any level.
type ComponentRow struct {
	Timepoint string
	Level     string
	LocalID   int
	DMRs      []int // persisted IDs
	Genes     []int
	Size      int
	EdgeCount int
	Density   float64
	Category  string
}

// BicliqueRow is one selected biclique.
type BicliqueRow struct {
	Timepoint string
	LocalID   int

	// ComponentID is the LocalID of the enclosing connected component, -1 if none.
	ComponentID int
	DMRs        []int // persisted IDs
	Genes       []int
	Category    string
}

// DominatingRow is one member of the dominating set.
type DominatingRow struct {
	Timepoint string
	DMR       int // persisted ID
	Dominated int
	Utility   float64
}

// EdgeStatsRow stores classification counts for one scope.
type EdgeStatsRow struct {
	Timepoint     string
	Scope         string
	ScopeID       int
	Permanent     int
	FalsePositive int
	FalseNegative int
	Accuracy      float64
	Noise         float64
}

// Rows is everything persisted for one timepoint.
type Rows struct {
	Timepoint string
	Offset    int
	Status    string

	DMRs       []DMRRow
	Genes      []GeneRow
	Components []ComponentRow
	Bicliques  []BicliqueRow
	Dominating []DominatingRow
	EdgeStats  []EdgeStatsRow
}

// dmrIDs holds the single conversion of every graph DMR ID of one call.
type dmrIDs map[int]int

func (m dmrIDs) list(raw []int) ([]int, error) {
	out := make([]int, len(raw))
	for i, r := range raw {
		id, ok := m[r]
		if !ok {
			return nil, fmt.Errorf("dmr %d: %w", r, core.ErrVertexNotFound)
		}
		out[i] = id
	}

	return out, nil
}

// BuildRows converts res into persistence rows. A result with
// StatusNoAnalysis yields only DMR and gene rows.
//
// Errors: ErrResultNil, *idmap.InvalidIDError for negative offsets, and
// core.ErrVertexNotFound when a component or biclique names a DMR the graph
// lacks.
func BuildRows(res *analysis.Result) (*Rows, error) {
	if res == nil || res.Graph == nil {
		return nil, ErrResultNil
	}
	g := res.Graph
	tp := res.Timepoint.Name
	out := &Rows{Timepoint: tp, Offset: res.Timepoint.Offset, Status: res.Status.String()}

	ids := make(dmrIDs, g.DMRCount())
	for _, raw := range g.DMRIDs() {
		id, err := idmap.CreateDMRID(raw, res.Timepoint.Offset)
		if err != nil {
			return nil, fmt.Errorf("BuildRows %q: %w", tp, err)
		}
		ids[raw] = id

		d, err := g.DMR(raw)
		if err != nil {
			return nil, fmt.Errorf("BuildRows %q: %w", tp, err)
		}
		deg, _ := g.Degree(core.SideDMR, raw)
		out.DMRs = append(out.DMRs, DMRRow{
			ID: id, RawID: raw, Timepoint: tp,
			AreaStat: d.AreaStat, Chromosome: d.Chromosome, Start: d.Start, End: d.End,
			Strand: d.Strand, PValue: d.PValue, QValue: d.QValue,
			Degree: deg, Hub: d.Hub,
		})
	}
	for _, gid := range g.GeneIDs() {
		gene, err := g.Gene(gid)
		if err != nil {
			return nil, fmt.Errorf("BuildRows %q: %w", tp, err)
		}
		deg, _ := g.Degree(core.SideGene, gid)
		out.Genes = append(out.Genes, GeneRow{
			ID: gid, Symbol: gene.Symbol, Description: gene.Description,
			Degree: deg, Hub: gene.Hub, Split: gene.Split,
		})
	}

	if !res.Analyzed() {
		return out, nil
	}

	for _, c := range res.Decomposition.All() {
		dmrs, err := ids.list(c.DMRs)
		if err != nil {
			return nil, fmt.Errorf("BuildRows %q: component %s/%d: %w", tp, c.Level, c.ID, err)
		}
		out.Components = append(out.Components, ComponentRow{
			Timepoint: tp, Level: c.Level.String(), LocalID: c.ID,
			DMRs: dmrs, Genes: append([]int(nil), c.Genes...),
			Size: c.Size(), EdgeCount: c.EdgeCount, Density: c.Density,
			Category: c.Category.String(),
		})
	}

	owner := bicliqueOwners(res.Decomposition.Connected)
	for i, b := range res.Bicliques.Bicliques {
		dmrs, err := ids.list(b.DMRs)
		if err != nil {
			return nil, fmt.Errorf("BuildRows %q: biclique %d: %w", tp, b.ID, err)
		}
		comp, ok := owner[i]
		if !ok {
			comp = -1
		}
		out.Bicliques = append(out.Bicliques, BicliqueRow{
			Timepoint: tp, LocalID: b.ID, ComponentID: comp,
			DMRs: dmrs, Genes: append([]int(nil), b.Genes...),
			Category: b.Category.String(),
		})
	}

	for _, e := range res.Domination.Entries {
		id, ok := ids[e.DMR]
		if !ok {
			return nil, fmt.Errorf("BuildRows %q: dominating dmr %d: %w", tp, e.DMR, core.ErrVertexNotFound)
		}
		out.Dominating = append(out.Dominating, DominatingRow{
			Timepoint: tp, DMR: id, Dominated: e.Dominated, Utility: e.Utility,
		})
	}

	out.EdgeStats = append(out.EdgeStats, statsRow(tp, ScopeGraph, 0, edgeclass.Group{Counts: res.Edges.Counts, Rates: res.Edges.Rates}))
	for _, grp := range res.Edges.PerBiclique {
		out.EdgeStats = append(out.EdgeStats, statsRow(tp, ScopeBiclique, grp.ID, grp))
	}
	for _, grp := range res.ComponentEdges {
		out.EdgeStats = append(out.EdgeStats, statsRow(tp, ScopeComponent, grp.ID, grp))
	}

	return out, nil
}

// bicliqueOwners maps biclique index → connected component ID.
func bicliqueOwners(components []decompose.Component) map[int]int {
	out := make(map[int]int)
	for _, c := range components {
		for _, bi := range c.Bicliques {
			out[bi] = c.ID
		}
	}

	return out
}

func statsRow(tp, scope string, id int, grp edgeclass.Group) EdgeStatsRow {
	return EdgeStatsRow{
		Timepoint: tp, Scope: scope, ScopeID: id,
		Permanent:     grp.Counts.Permanent,
		FalsePositive: grp.Counts.FalsePositive,
		FalseNegative: grp.Counts.FalseNegative,
		Accuracy:      grp.Rates.Accuracy,
		Noise:         grp.Rates.Noise,
	}
}
