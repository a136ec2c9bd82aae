package coxeter

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSchlafli parses a linear Schläfli symbol such as "{7,3}" or "7 3"
// into its list of branch labels. Labels must be at least 2.
func ParseSchlafli(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty Schläfli symbol %q", s)
	}
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad Schläfli label %q: %w", f, err)
		}
		if v < 2 {
			return nil, fmt.Errorf("Schläfli label %d out of range", v)
		}
		vals[i] = v
	}
	return vals, nil
}

// SchlafliRels expands a linear Schläfli symbol into Coxeter relations over
// rank = len(vals)+1 self-inverse generators: adjacent generators braid with
// the labelled order, non-adjacent ones commute. The generator squares are
// implicit in the enumeration, which stores inverse products symmetrically.
func SchlafliRels(vals []int) [][]uint8 {
	var rels [][]uint8
	for i, val := range vals {
		for x := 0; x < i; x++ {
			rels = append(rels, repeatPair(uint8(x), uint8(i+1), 2))
		}
		rels = append(rels, repeatPair(uint8(i), uint8(i+1), val))
	}
	return rels
}

// ParseRelation parses an extra relation of the form "0 2 1;8": a sequence
// of generator indices and a repeat count separated by a semicolon.
func ParseRelation(s string) ([]uint8, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) != 2 {
		return nil, fmt.Errorf("relation %q: want \"gens;repeat\"", s)
	}
	rep, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || rep < 1 {
		return nil, fmt.Errorf("relation %q: bad repeat count", s)
	}
	var gens []uint8
	for _, f := range strings.Fields(parts[0]) {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("relation %q: bad generator %q", s, f)
		}
		gens = append(gens, uint8(v))
	}
	if len(gens) == 0 {
		return nil, fmt.Errorf("relation %q: no generators", s)
	}
	out := make([]uint8, 0, len(gens)*rep)
	for i := 0; i < rep; i++ {
		out = append(out, gens...)
	}
	return out, nil
}

func repeatPair(a, b uint8, n int) []uint8 {
	out := make([]uint8, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a, b)
	}
	return out
}
