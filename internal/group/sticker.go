package group

// Sticker re-labels group elements into facelet ids before colorization. It
// is a flat table with two entries per element, selected by whether the
// reduced point fell inside the cutting mirror. The partition is orthogonal
// to the group structure: several elements may share a facelet, and one
// element's domain may split in two.
type Sticker struct {
	cells []Element
}

// NewSticker wraps a prebuilt facelet table; cells holds the outside and
// inside entries for each element in turn.
func NewSticker(cells []Element) *Sticker {
	return &Sticker{cells: cells}
}

// Elements returns the number of rows in the table.
func (s *Sticker) Elements() int { return len(s.cells) / 2 }

// FaceletOf returns the facelet id for e on the given side of the cutting
// mirror. Sentinel absorbs.
func (s *Sticker) FaceletOf(e Element, insideCut bool) Element {
	if e == Sentinel || e < 0 || int(e) >= s.Elements() {
		return Sentinel
	}
	i := int(e) * 2
	if insideCut {
		i++
	}
	return s.cells[i]
}

// PartitionByTile builds the default sticker partition for an automaton:
// outside the cut every element keeps its own label, inside the cut the
// element collapses onto its stored tile color. This folds the inner part of
// each domain onto the tile it belongs to, the facelet split used by the
// puzzle colorings.
func PartitionByTile(a *Automaton) *Sticker {
	n := a.Elements()
	cells := make([]Element, 0, 2*n)
	for e := Element(0); int(e) < n; e++ {
		cells = append(cells, e, a.ColorOf(e))
	}
	return &Sticker{cells: cells}
}
