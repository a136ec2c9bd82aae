package tiling

import (
	"fmt"

	"coxtile/internal/conformal"
	"coxtile/internal/coxeter"
	"coxtile/internal/group"
)

// Tiling bundles a Coxeter symbol with its generating mirrors and the data
// needed to enumerate its group tables.
type Tiling struct {
	Name   string
	Symbol []int
	// Relations holds the Coxeter relations plus any extra quotient
	// relations that keep the enumeration finite.
	Relations [][]uint8
	// Subgroup lists the generators of the parabolic subgroup whose
	// cosets form the tiles.
	Subgroup []uint8

	Mirrors []conformal.Mirror
	// Edges flags the mirrors bounding a tile, i.e. those outside the
	// subgroup.
	Edges []bool
	// Interior is a point inside the fundamental domain.
	Interior conformal.Point
}

// New builds a tiling from a Schläfli symbol, optional extra relations in
// "gens;repeat" form, and the tile subgroup. A nil subgroup defaults to all
// generators but the last.
func New(name string, symbol []int, extraRels []string, subgroup []uint8) (*Tiling, error) {
	rank := len(symbol) + 1
	mirrors, interior, err := Mirrors(symbol)
	if err != nil {
		return nil, err
	}

	rels := coxeter.SchlafliRels(symbol)
	for _, s := range extraRels {
		rel, err := coxeter.ParseRelation(s)
		if err != nil {
			return nil, err
		}
		for _, g := range rel {
			if int(g) >= rank {
				return nil, fmt.Errorf("relation %q uses generator %d outside rank %d", s, g, rank)
			}
		}
		rels = append(rels, rel)
	}

	if subgroup == nil {
		for g := 0; g < rank-1; g++ {
			subgroup = append(subgroup, uint8(g))
		}
	}
	for _, g := range subgroup {
		if int(g) >= rank {
			return nil, fmt.Errorf("subgroup generator %d outside rank %d", g, rank)
		}
	}

	edges := make([]bool, rank)
	for i := range edges {
		edges[i] = true
	}
	for _, g := range subgroup {
		edges[g] = false
	}

	return &Tiling{
		Name:      name,
		Symbol:    symbol,
		Relations: rels,
		Subgroup:  subgroup,
		Mirrors:   mirrors,
		Edges:     edges,
		Interior:  interior,
	}, nil
}

// Rank returns the generator count.
func (t *Tiling) Rank() int { return len(t.Mirrors) }

// Tables enumerates the element and tile groups up to limit discovery steps
// and assembles the automaton and default sticker partition the kernel
// consumes. An infinite group cut short by the limit yields sentinel holes
// at the edge of the enumerated ball.
func (t *Tiling) Tables(limit int) (*group.Automaton, *group.Sticker) {
	rank := t.Rank()
	elems := coxeter.ElementTable(rank, t.Relations, limit)
	tiles := coxeter.EnumerateCosets(rank, t.Relations, t.Subgroup, limit)
	a := group.FromGroups(elems, tiles)
	return a, group.PartitionByTile(a)
}

// CutMirror returns the default sticker cut: a circle about the domain
// vertex at (1, 0), splitting each tile into an inner and an outer facelet
// band.
func (t *Tiling) CutMirror() conformal.Mirror {
	return conformal.CircleMirror(1, 0, 0.5)
}

// Params assembles a frame configuration for this tiling. The caller owns
// the returned value and may adjust scale, flags and depth per frame.
func (t *Tiling) Params(a *group.Automaton, s *group.Sticker, depth int) *Params {
	p := &Params{
		MirrorCount: t.Rank(),
		Cut:         t.CutMirror(),
		Reference:   t.Interior,
		Scale:       [2]float64{0.004, 0.004},
		ColScale:    1,
		Depth:       depth,
		Flags:       FlagHighlight | FlagElements,
		Automaton:   a,
		Stickers:    s,
	}
	for i, m := range t.Mirrors {
		p.Mirrors[i] = m
		p.Edges[i] = t.Edges[i]
	}
	return p
}
