package group

import "coxtile/internal/coxeter"

// Element indexes a row of the automaton: which reflected copy of the
// fundamental domain a point was reduced from. Sentinel marks a point that
// left the enumerated ball or hit an unresolved table entry.
type Element int32

const (
	// Identity is the element of the untouched fundamental domain.
	Identity Element = 0
	// Sentinel is the absorbing "no valid element" value.
	Sentinel Element = -1
)

// Automaton is the precomputed group transition table consumed by the
// reducer. Each row holds a stored color index followed by one neighbor per
// generator; the layout is a single flat buffer with stride generators+1.
type Automaton struct {
	generators int
	cells      []Element
}

// NewAutomaton wraps a prebuilt flat table. The cell slice length must be a
// multiple of generators+1. The automaton never mutates the table and may be
// shared read-only across any number of concurrent lookups.
func NewAutomaton(generators int, cells []Element) *Automaton {
	return &Automaton{generators: generators, cells: cells}
}

// Generators returns the generator count.
func (a *Automaton) Generators() int { return a.generators }

// Elements returns the number of enumerated rows.
func (a *Automaton) Elements() int { return len(a.cells) / (a.generators + 1) }

// Advance follows generator gen from e. Sentinel absorbs; out-of-range
// lookups degrade to Sentinel rather than panicking, so a malformed table
// behaves like one full of sentinels.
func (a *Automaton) Advance(e Element, gen int) Element {
	if e == Sentinel {
		return Sentinel
	}
	if gen < 0 || gen >= a.generators || int(e) >= a.Elements() || e < 0 {
		return Sentinel
	}
	return a.cells[int(e)*(a.generators+1)+1+gen]
}

// ColorOf returns the stored color index of e's row. The color is the tile
// reached by the element's inverse word, so domains are colored by orbit
// structure rather than raw element index. Sentinel absorbs.
func (a *Automaton) ColorOf(e Element) Element {
	if e == Sentinel || e < 0 || int(e) >= a.Elements() {
		return Sentinel
	}
	return a.cells[int(e)*(a.generators+1)]
}

// FromGroups assembles the automaton from an enumerated element group and
// tile (coset) group: column 0 of each row is the tile reached from the
// identity coset by the element's inverse word, the remaining columns are
// the element-group neighbors. Unknown products become Sentinel.
func FromGroups(elements, tiles *coxeter.Group) *Automaton {
	gens := elements.Generators()
	cells := make([]Element, 0, elements.Points()*(gens+1))
	for p := int32(0); p < int32(elements.Points()); p++ {
		inv := tiles.MulWord(0, elements.Word(p).Inverse())
		cells = append(cells, fromPoint(inv))
		for g := 0; g < gens; g++ {
			cells = append(cells, fromPoint(elements.MulGen(p, g)))
		}
	}
	return NewAutomaton(gens, cells)
}

func fromPoint(p int32) Element {
	if p == coxeter.Unknown {
		return Sentinel
	}
	return Element(p)
}
