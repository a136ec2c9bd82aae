package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coxtile/internal/conformal"
	"coxtile/internal/group"
)

func TestNewDefaultsSubgroupAndEdges(t *testing.T) {
	til, err := New("heptagonal", []int{7, 3}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, til.Rank())
	assert.Equal(t, []uint8{0, 1}, til.Subgroup)
	assert.Equal(t, []bool{false, false, true}, til.Edges)
	require.Len(t, til.Mirrors, 3)
	for _, m := range til.Mirrors {
		assert.True(t, m.Inside(til.Interior))
	}
}

func TestNewExplicitSubgroup(t *testing.T) {
	til, err := New("t", []int{3, 3}, nil, []uint8{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, til.Edges)
}

func TestNewRejectsBadRelation(t *testing.T) {
	_, err := New("t", []int{7, 3}, []string{"0 5 1;8"}, nil)
	assert.Error(t, err)

	_, err = New("t", []int{7, 3}, []string{"not a relation"}, nil)
	assert.Error(t, err)
}

func TestNewRejectsBadSubgroup(t *testing.T) {
	_, err := New("t", []int{7, 3}, nil, []uint8{0, 3})
	assert.Error(t, err)
}

func TestTablesFiniteGroup(t *testing.T) {
	til, err := New("tetrahedral", []int{3, 3}, nil, nil)
	require.NoError(t, err)

	a, s := til.Tables(1000)
	require.NotNil(t, a)
	require.NotNil(t, s)
	assert.Equal(t, group.Element(0), a.ColorOf(group.Identity))

	// S4 is closed; no transition leaves the table.
	for g := 0; g < til.Rank(); g++ {
		assert.NotEqual(t, group.Sentinel, a.Advance(group.Identity, g))
	}
}

func TestParamsAssembly(t *testing.T) {
	til, params := heptagonalParams(t)
	assert.Equal(t, til.Rank(), params.MirrorCount)
	assert.Equal(t, 50, params.Depth)
	assert.NotNil(t, params.Automaton)
	assert.NotNil(t, params.Stickers)
	assert.Equal(t, FlagHighlight|FlagElements, params.Flags)
	for i := 0; i < params.MirrorCount; i++ {
		assert.Equal(t, til.Edges[i], params.Edges[i])
		assert.Equal(t, til.Mirrors[i], params.Mirrors[i])
	}
	assert.True(t, params.Cut.Inside(conformal.Lift(1, 0)))
}

func TestAllPresetsConstruct(t *testing.T) {
	names := PresetNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "heptagonal")
	assert.Contains(t, names, "octagonal")

	for _, name := range names {
		til, err := Presets()[name]()
		require.NoError(t, err, "preset %s", name)
		require.NotNil(t, til, "preset %s", name)
		assert.Equal(t, name, til.Name)

		a, s := til.Tables(500)
		require.NotNil(t, a, "preset %s", name)
		require.NotNil(t, s, "preset %s", name)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Presets())
	Register("", func() (*Tiling, error) { return nil, nil })
	Register("nilfactory", nil)
	assert.Equal(t, before, len(Presets()))
}
