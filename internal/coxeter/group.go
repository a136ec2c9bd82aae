package coxeter

import (
	"fmt"
	"strings"
)

// Unknown marks a product the enumeration never resolved, either because the
// group is infinite or because the point limit cut the enumeration short.
const Unknown int32 = -1

// Group is a finite multiplication table over self-inverse generators,
// produced by coset enumeration. Point 0 is the identity coset. Each point
// carries a representative word in the generators.
type Group struct {
	points     int
	generators int
	table      []int32
	words      []Word
}

// Points returns the number of enumerated points.
func (g *Group) Points() int { return g.points }

// Generators returns the number of generators.
func (g *Group) Generators() int { return g.generators }

// MulGen multiplies point p by generator gen. Unknown absorbs, and products
// the enumeration never filled in come back Unknown as well.
func (g *Group) MulGen(p int32, gen int) int32 {
	if p == Unknown {
		return Unknown
	}
	if p < 0 || int(p) >= g.points || gen < 0 || gen >= g.generators {
		return Unknown
	}
	return g.table[int(p)*g.generators+gen]
}

// MulWord multiplies point p by each generator of w in turn.
func (g *Group) MulWord(p int32, w Word) int32 {
	for _, gen := range w {
		p = g.MulGen(p, int(gen))
	}
	return p
}

// Word returns the representative word of point p.
func (g *Group) Word(p int32) Word {
	if p < 0 || int(p) >= len(g.words) {
		return nil
	}
	return g.words[p]
}

// String renders the multiplication table, mainly for debugging enumerations.
func (g *Group) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "points: %d\ngenerators: %d\n", g.points, g.generators)
	for p := 0; p < g.points; p++ {
		fmt.Fprintf(&b, "P%02x:", p)
		for gen := 0; gen < g.generators; gen++ {
			r := g.table[p*g.generators+gen]
			if r == Unknown {
				b.WriteString(" ??")
			} else {
				fmt.Fprintf(&b, " P%02x", r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
