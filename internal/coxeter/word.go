package coxeter

// Word is a sequence of generator indices applied left to right. All
// generators are self-inverse, so the inverse of a word is its reversal.
type Word []uint8

// Inverse returns the reversed word.
func (w Word) Inverse() Word {
	inv := make(Word, len(w))
	for i, g := range w {
		inv[len(w)-1-i] = g
	}
	return inv
}

// Append returns a new word extending w by the generator g.
func (w Word) Append(g uint8) Word {
	out := make(Word, len(w), len(w)+1)
	copy(out, w)
	return append(out, g)
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)
	return out
}
