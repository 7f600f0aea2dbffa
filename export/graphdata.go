// SPDX-License-Identifier: MIT
// Package: dmrgraph/export
//
// graphdata.go: visualization payload.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/dmrgraph/analysis"
	"github.com/katalvlaran/dmrgraph/core"
)

// Node is one vertex of the visualization payload.
type Node struct {
	Key       string  `json:"key"` // "dmr:<id>" or "gene:<id>"
	Side      string  `json:"side"`
	ID        int     `json:"id"`
	Label     string  `json:"label"`
	Degree    int     `json:"degree"`
	Hub       bool    `json:"hub"`
	Split     bool    `json:"split,omitempty"`
	Dominator bool    `json:"dominator,omitempty"`
	Component int     `json:"component"`
	AreaStat  float64 `json:"area_stat,omitempty"`
}

// Link is one edge of the visualization payload.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Origin string `json:"origin"`
	Class  string `json:"class"`
}

// BicliqueSummary describes one biclique for display.
type BicliqueSummary struct {
	ID       int    `json:"id"`
	DMRs     []int  `json:"dmrs"`
	Genes    []int  `json:"genes"`
	Category string `json:"category"`
}

// ComponentSummary describes one connected component for display.
type ComponentSummary struct {
	ID        int     `json:"id"`
	DMRs      int     `json:"dmrs"`
	Genes     int     `json:"genes"`
	Edges     int     `json:"edges"`
	Density   float64 `json:"density"`
	Category  string  `json:"category"`
	Bicliques []int   `json:"bicliques,omitempty"`
}

// GraphData is the visualization payload of one timepoint.
type GraphData struct {
	Timepoint  string             `json:"timepoint"`
	Status     string             `json:"status"`
	Nodes      []Node             `json:"nodes"`
	Links      []Link             `json:"links"`
	Bicliques  []BicliqueSummary  `json:"bicliques"`
	Components []ComponentSummary `json:"components"`
}

// NodeKey returns the payload key of a vertex.
func NodeKey(side core.Side, id int) string {
	return fmt.Sprintf("%s:%d", side, id)
}

// BuildGraphData converts res into the visualization payload; nil when res
// carries no graph. Nodes list DMRs then genes, each by ascending ID; links
// are sorted by (DMR, Gene). Vertices outside every connected component
// report Component -1.
func BuildGraphData(res *analysis.Result) *GraphData {
	if res == nil || res.Graph == nil {
		return nil
	}
	g := res.Graph
	out := &GraphData{
		Timepoint:  res.Timepoint.Name,
		Status:     res.Status.String(),
		Nodes:      []Node{},
		Links:      []Link{},
		Bicliques:  []BicliqueSummary{},
		Components: []ComponentSummary{},
	}

	compOf := make(map[string]int)
	dominators := make(map[int]bool)
	if res.Analyzed() {
		for _, c := range res.Decomposition.Connected {
			for _, id := range c.DMRs {
				compOf[NodeKey(core.SideDMR, id)] = c.ID
			}
			for _, id := range c.Genes {
				compOf[NodeKey(core.SideGene, id)] = c.ID
			}
			out.Components = append(out.Components, ComponentSummary{
				ID: c.ID, DMRs: len(c.DMRs), Genes: len(c.Genes), Edges: c.EdgeCount,
				Density: c.Density, Category: c.Category.String(), Bicliques: c.Bicliques,
			})
		}
		for _, b := range res.Bicliques.Bicliques {
			out.Bicliques = append(out.Bicliques, BicliqueSummary{
				ID: b.ID, DMRs: b.DMRs, Genes: b.Genes, Category: b.Category.String(),
			})
		}
		for _, id := range res.Domination.DMRs() {
			dominators[id] = true
		}
	}
	component := func(key string) int {
		if id, ok := compOf[key]; ok {
			return id
		}
		return -1
	}

	for _, id := range g.DMRIDs() {
		d, err := g.DMR(id)
		if err != nil {
			continue
		}
		deg, _ := g.Degree(core.SideDMR, id)
		key := NodeKey(core.SideDMR, id)
		out.Nodes = append(out.Nodes, Node{
			Key: key, Side: core.SideDMR.String(), ID: id, Label: fmt.Sprintf("DMR_%d", id),
			Degree: deg, Hub: d.Hub, Dominator: dominators[id], Component: component(key),
			AreaStat: d.AreaStat,
		})
	}
	for _, id := range g.GeneIDs() {
		gene, err := g.Gene(id)
		if err != nil {
			continue
		}
		deg, _ := g.Degree(core.SideGene, id)
		key := NodeKey(core.SideGene, id)
		out.Nodes = append(out.Nodes, Node{
			Key: key, Side: core.SideGene.String(), ID: id, Label: gene.Symbol,
			Degree: deg, Hub: gene.Hub, Split: gene.Split, Component: component(key),
		})
	}

	for _, e := range g.Edges() {
		out.Links = append(out.Links, Link{
			Source: NodeKey(core.SideDMR, e.DMR),
			Target: NodeKey(core.SideGene, e.Gene),
			Origin: e.Source.String(),
			Class:  e.Class.String(),
		})
	}

	return out
}

// WriteJSON encodes data as indented JSON.
func WriteJSON(w io.Writer, data *GraphData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
