// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// decompose.go: all three levels from one indexed snapshot.

package decompose

import (
	"fmt"

	"github.com/katalvlaran/dmrgraph/core"
)

// Decompose runs the connected, biconnected and triconnected passes on one
// snapshot of g. Categories other than empty are assigned later by Classify.
//
// Complexity: O((V + E)·α(V)).
// Errors: ErrGraphNil, or a traversal error wrapped with the failing level.
func Decompose(g *core.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := g.Indexed()

	blocks, err := biconnectedIndexed(ix)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %s: %w", LevelBiconnected, err)
	}
	tri, err := triconnectedIndexed(ix)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %s: %w", LevelTriconnected, err)
	}

	return &Decomposition{
		Connected:          connectedIndexed(ix),
		Biconnected:        blocks.Components,
		Triconnected:       tri,
		ArticulationPoints: blocks.ArticulationPoints,
		Bridges:            blocks.Bridges,
	}, nil
}
