package tiling

import (
	"coxtile/internal/conformal"
	"coxtile/internal/group"
)

// Result is the terminal state of one point's reduction: the point folded
// into the fundamental domain, the group element it was reduced from, and
// the number of reflections applied on the way.
type Result struct {
	Point conformal.Point
	Elem  group.Element
	Steps int
}

// Reduce folds p into the fundamental domain by repeatedly reflecting it
// through whichever mirror it violates, tracking the composed group element
// through the automaton. Generators are tested in ascending index order; a
// round that fires no reflection settles the point, and params.Depth caps
// the number of rounds. The reduction path is deterministic but not
// canonical: group-equivalent points reached through different rounding may
// settle on different, group-equivalent elements.
func Reduce(p conformal.Point, params *Params) Result {
	elem := group.Identity
	steps := 0
	for round := 0; round < params.Depth; round++ {
		settled := true
		for j := 0; j < params.MirrorCount; j++ {
			if params.Mirrors[j].Inside(p) {
				continue
			}
			p = params.Mirrors[j].Reflect(p)
			elem = params.Automaton.Advance(elem, j)
			steps++
			settled = false
		}
		if settled {
			break
		}
	}
	return Result{Point: p, Elem: elem, Steps: steps}
}
