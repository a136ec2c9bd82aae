package tiling

import (
	"testing"

	"coxtile/internal/conformal"
	"coxtile/internal/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heptagonalParams(t *testing.T) (*Tiling, *Params) {
	t.Helper()
	til, err := New("heptagonal", []int{7, 3}, []string{"0 2 1;8"}, nil)
	require.NoError(t, err)
	a, s := til.Tables(2000)
	return til, til.Params(a, s, 50)
}

func TestIdentityPointUntouched(t *testing.T) {
	til, params := heptagonalParams(t)
	res := Reduce(til.Interior, params)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, group.Identity, res.Elem)
	assert.Equal(t, til.Interior, res.Point)
}

func TestSingleReflection(t *testing.T) {
	_, params := heptagonalParams(t)
	params.MirrorCount = 1 // only the x-axis mirror

	p := conformal.Lift(0.3, -0.4)
	require.False(t, params.Mirrors[0].Inside(p))

	res := Reduce(p, params)
	assert.Equal(t, 1, res.Steps)
	assert.Equal(t, params.Automaton.Advance(group.Identity, 0), res.Elem)
	assert.Equal(t, params.Mirrors[0].Reflect(p), res.Point)
}

func TestReduceSettlesInsideDomain(t *testing.T) {
	_, params := heptagonalParams(t)
	points := [][2]float64{
		{0.9, 0.1}, {-0.5, 0.5}, {0.2, -0.7}, {-0.1, -0.1}, {0.7, 0.7},
	}
	for _, c := range points {
		res := Reduce(conformal.Lift(c[0], c[1]), params)
		if Reduce(res.Point, params).Steps != 0 {
			continue // depth exhausted, nothing settled to check
		}
		for j := 0; j < params.MirrorCount; j++ {
			assert.True(t, params.Mirrors[j].Inside(res.Point),
				"settled point from (%v,%v) violates mirror %d", c[0], c[1], j)
		}
	}
}

func TestIdempotentSettle(t *testing.T) {
	_, params := heptagonalParams(t)
	res := Reduce(conformal.Lift(0.3, 0.2), params)
	require.NotEqual(t, 0, res.Steps)
	again := Reduce(res.Point, params)
	assert.Equal(t, 0, again.Steps)
	assert.Equal(t, group.Identity, again.Elem)
}

func TestDepthExhaustion(t *testing.T) {
	// Two opposed copies of the same mirror can never both be satisfied,
	// so no round ever settles and the loop runs the full depth budget:
	// one reflection in the first round, two in every later one.
	m := conformal.LineMirror(0, 1, 0)
	params := &Params{
		MirrorCount: 2,
		Depth:       10,
		Automaton: group.NewAutomaton(2, []group.Element{
			0, 1, 1,
			1, 0, 0,
		}),
	}
	params.Mirrors[0] = m
	params.Mirrors[1] = m.Neg()

	res := Reduce(conformal.Lift(0.2, 0.3), params)
	assert.Equal(t, 2*params.Depth-1, res.Steps)
	assert.NotEqual(t, group.Sentinel, res.Elem)
}

func TestSentinelPropagatesThroughReduction(t *testing.T) {
	// An automaton whose only transition leads off the table.
	params := &Params{
		MirrorCount: 1,
		Depth:       5,
		Automaton:   group.NewAutomaton(1, []group.Element{0, group.Sentinel}),
	}
	params.Mirrors[0] = conformal.LineMirror(0, 1, 0)

	res := Reduce(conformal.Lift(0.1, -0.2), params)
	assert.Equal(t, group.Sentinel, res.Elem)
	assert.Equal(t, 1, res.Steps)
}
