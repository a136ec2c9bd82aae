package coxeter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDihedralEnumeration(t *testing.T) {
	// <a, b | a^2 = b^2 = (ab)^3 = 1> has order 6.
	rels := [][]uint8{repeatPair(0, 1, 3)}
	g := ElementTable(2, rels, 100)

	require.Equal(t, 6, g.Points())
	require.Equal(t, 2, g.Generators())

	// Every product is known and closed.
	for p := int32(0); p < int32(g.Points()); p++ {
		for gen := 0; gen < 2; gen++ {
			q := g.MulGen(p, gen)
			require.NotEqual(t, Unknown, q)
			assert.Equal(t, p, g.MulGen(q, gen), "generators are involutions")
		}
	}

	// (ab)^3 returns to the identity.
	p := int32(0)
	for i := 0; i < 3; i++ {
		p = g.MulGen(p, 0)
		p = g.MulGen(p, 1)
	}
	assert.Equal(t, int32(0), p)
}

func TestTriangleGroupOrder(t *testing.T) {
	// The (3,3) triangle group on 3 generators is S4, order 24.
	g := ElementTable(3, SchlafliRels([]int{3, 3}), 1000)
	require.Equal(t, 24, g.Points())
}

func TestCosetEnumeration(t *testing.T) {
	// S4 over the parabolic subgroup <g0, g1> (order 6) has 4 cosets.
	g := EnumerateCosets(3, SchlafliRels([]int{3, 3}), []uint8{0, 1}, 1000)
	require.Equal(t, 4, g.Points())

	// Subgroup generators fix the identity coset.
	assert.Equal(t, int32(0), g.MulGen(0, 0))
	assert.Equal(t, int32(0), g.MulGen(0, 1))
	assert.NotEqual(t, int32(0), g.MulGen(0, 2))
}

func TestWordsReproducePoints(t *testing.T) {
	g := ElementTable(3, SchlafliRels([]int{3, 3}), 1000)
	require.Empty(t, g.Word(0))
	for p := int32(0); p < int32(g.Points()); p++ {
		assert.Equal(t, p, g.MulWord(0, g.Word(p)), "word of %d", p)
	}
}

func TestInverseWordCancels(t *testing.T) {
	g := ElementTable(3, SchlafliRels([]int{3, 3}), 1000)
	for p := int32(0); p < int32(g.Points()); p++ {
		w := g.Word(p)
		assert.Equal(t, int32(0), g.MulWord(p, w.Inverse()))
	}
}

func TestLimitLeavesUnknownHoles(t *testing.T) {
	// {7,3} is infinite; a small limit must stop with holes, not hang.
	g := ElementTable(3, SchlafliRels([]int{7, 3}), 40)
	require.Greater(t, g.Points(), 1)

	holes := 0
	for p := int32(0); p < int32(g.Points()); p++ {
		for gen := 0; gen < 3; gen++ {
			if g.MulGen(p, gen) == Unknown {
				holes++
			}
		}
	}
	assert.Greater(t, holes, 0)
}

func TestUnknownAbsorbs(t *testing.T) {
	g := ElementTable(2, [][]uint8{repeatPair(0, 1, 3)}, 100)
	assert.Equal(t, Unknown, g.MulGen(Unknown, 0))
	assert.Equal(t, Unknown, g.MulWord(Unknown, Word{0, 1, 0}))
	assert.Equal(t, Unknown, g.MulGen(99, 0))
}
