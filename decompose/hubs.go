// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// hubs.go: hub detection relative to the enclosing component.

package decompose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dmrgraph/core"
)

// DefaultHubSigma is the number of standard deviations above the component
// mean degree a vertex needs to be a hub.
const DefaultHubSigma = 2.0

// minHubComponent is the smallest component size with a meaningful spread.
const minHubComponent = 3

// HubFlags marks vertices whose degree exceeds mean + sigma·stddev of the
// degrees inside their component, sets the Hub flag on g and returns the hubs
// (DMRs first, ascending IDs within a side). Components smaller than three
// vertices never contain hubs.
//
// Complexity: O(Σ|C|).
// Errors: ErrGraphNil, ErrBadSigma, core lookup errors for foreign components.
func HubFlags(g *core.Graph, components []Component, sigma float64) ([]core.NodeRef, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if sigma < 0 || math.IsNaN(sigma) {
		return nil, ErrBadSigma
	}

	var dmrHubs, geneHubs []int
	for _, c := range components {
		if c.Size() < minHubComponent {
			continue
		}
		refs := make([]core.NodeRef, 0, c.Size())
		degs := make([]float64, 0, c.Size())
		for _, id := range c.DMRs {
			refs = append(refs, core.NodeRef{Side: core.SideDMR, ID: id})
		}
		for _, id := range c.Genes {
			refs = append(refs, core.NodeRef{Side: core.SideGene, ID: id})
		}
		for _, r := range refs {
			d, err := g.Degree(r.Side, r.ID)
			if err != nil {
				return nil, fmt.Errorf("HubFlags: component %d: %w", c.ID, err)
			}
			degs = append(degs, float64(d))
		}

		mean, std := stat.MeanStdDev(degs, nil)
		threshold := mean + sigma*std
		for i, r := range refs {
			if degs[i] <= threshold {
				continue
			}
			if r.Side == core.SideDMR {
				dmrHubs = append(dmrHubs, r.ID)
				if err := g.SetDMRHub(r.ID, true); err != nil {
					return nil, fmt.Errorf("HubFlags: %w", err)
				}
			} else {
				geneHubs = append(geneHubs, r.ID)
				if err := g.SetGeneHub(r.ID, true); err != nil {
					return nil, fmt.Errorf("HubFlags: %w", err)
				}
			}
		}
	}

	out := make([]core.NodeRef, 0, len(dmrHubs)+len(geneHubs))
	for _, id := range uniqueSorted(dmrHubs) {
		out = append(out, core.NodeRef{Side: core.SideDMR, ID: id})
	}
	for _, id := range uniqueSorted(geneHubs) {
		out = append(out, core.NodeRef{Side: core.SideGene, ID: id})
	}

	return out, nil
}
