// SPDX-License-Identifier: MIT
// Package: dmrgraph/export
//
// neighborhood.go: hop-limited visualization payload around one vertex.

package export

import (
	"fmt"

	"github.com/katalvlaran/dmrgraph/analysis"
	"github.com/katalvlaran/dmrgraph/bfs"
	"github.com/katalvlaran/dmrgraph/core"
)

// Neighborhood returns the part of BuildGraphData(res) within hops edges of
// ref: the reached nodes, links between them, bicliques lying entirely
// inside, and the component holding ref. hops == 0 means the whole component.
//
// Errors: ErrResultNil, core.ErrVertexNotFound for an unknown ref,
// bfs.ErrOptionViolation for negative hops.
func Neighborhood(res *analysis.Result, ref core.NodeRef, hops int) (*GraphData, error) {
	full := BuildGraphData(res)
	if full == nil {
		return nil, ErrResultNil
	}
	ix := res.Graph.Indexed()
	start, ok := ix.Index(ref)
	if !ok {
		return nil, fmt.Errorf("Neighborhood %s: %w", NodeKey(ref.Side, ref.ID), core.ErrVertexNotFound)
	}
	walk, err := bfs.BFS(ix, start, bfs.WithMaxDepth(hops))
	if err != nil {
		return nil, fmt.Errorf("Neighborhood %s: %w", NodeKey(ref.Side, ref.ID), err)
	}

	inside := make(map[string]bool, len(walk.Order))
	for _, v := range walk.Order {
		n := ix.Nodes[v]
		inside[NodeKey(n.Side, n.ID)] = true
	}

	out := &GraphData{
		Timepoint:  full.Timepoint,
		Status:     full.Status,
		Nodes:      []Node{},
		Links:      []Link{},
		Bicliques:  []BicliqueSummary{},
		Components: []ComponentSummary{},
	}
	home := -1
	for _, n := range full.Nodes {
		if !inside[n.Key] {
			continue
		}
		out.Nodes = append(out.Nodes, n)
		if n.Side == ref.Side.String() && n.ID == ref.ID {
			home = n.Component
		}
	}
	for _, l := range full.Links {
		if inside[l.Source] && inside[l.Target] {
			out.Links = append(out.Links, l)
		}
	}
	for _, b := range full.Bicliques {
		if allInside(inside, core.SideDMR, b.DMRs) && allInside(inside, core.SideGene, b.Genes) {
			out.Bicliques = append(out.Bicliques, b)
		}
	}
	for _, c := range full.Components {
		if c.ID == home {
			out.Components = append(out.Components, c)
		}
	}

	return out, nil
}

func allInside(inside map[string]bool, side core.Side, ids []int) bool {
	for _, id := range ids {
		if !inside[NodeKey(side, id)] {
			return false
		}
	}

	return true
}
