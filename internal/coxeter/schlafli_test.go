package coxeter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchlafli(t *testing.T) {
	vals, err := ParseSchlafli("{7,3}")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3}, vals)

	vals, err = ParseSchlafli("8 3 3")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 3, 3}, vals)

	_, err = ParseSchlafli("{7,x}")
	assert.Error(t, err)
	_, err = ParseSchlafli("{1,3}")
	assert.Error(t, err)
	_, err = ParseSchlafli("")
	assert.Error(t, err)
}

func TestSchlafliRels(t *testing.T) {
	rels := SchlafliRels([]int{7, 3})
	// One braid relation per branch plus one commutator for the skip pair.
	require.Len(t, rels, 3)
	assert.Equal(t, repeatPair(0, 1, 7), rels[0])
	assert.Equal(t, repeatPair(0, 2, 2), rels[1])
	assert.Equal(t, repeatPair(1, 2, 3), rels[2])
}

func TestParseRelation(t *testing.T) {
	rel, err := ParseRelation("0 2 1;2")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 2, 1, 0, 2, 1}, rel)

	_, err = ParseRelation("0 2 1")
	assert.Error(t, err)
	_, err = ParseRelation(";3")
	assert.Error(t, err)
	_, err = ParseRelation("0 1;0")
	assert.Error(t, err)
}
