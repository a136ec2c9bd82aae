package conformal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMirrors() []Mirror {
	return []Mirror{
		LineMirror(0, 1, 0),
		LineMirror(1, 0, 0.5),
		LineMirror(-0.6, 0.8, -0.25),
		CircleMirror(0, 0, 1),
		CircleMirror(2, -1, 0.5),
		CircleMirror(7.568, 0, 6.568),
	}
}

func testPoints() []Point {
	return []Point{
		Lift(0, 0), Lift(1, 0), Lift(0.3, -0.4),
		Lift(-2, 5), Lift(0.01, 0.01), Lift(10, -10),
	}
}

func TestMirrorsAreUnit(t *testing.T) {
	for _, c := range testMirrors() {
		assert.InDelta(t, 1.0, c.Norm2(), 1e-12)
	}
}

func TestReflectRoundTrip(t *testing.T) {
	for _, c := range testMirrors() {
		for _, p := range testPoints() {
			q := c.Reflect(c.Reflect(p))
			scale := math.Max(1, math.Abs(p.M))
			assert.InDelta(t, p.M, q.M, 1e-9*scale)
			assert.InDelta(t, p.P, q.P, 1e-9*scale)
			assert.InDelta(t, p.X, q.X, 1e-9*scale)
			assert.InDelta(t, p.Y, q.Y, 1e-9*scale)
		}
	}
}

func TestReflectPreservesNull(t *testing.T) {
	for _, c := range testMirrors() {
		for _, p := range testPoints() {
			q := c.Reflect(p)
			scale := math.Max(1, q.M*q.M)
			require.InDelta(t, 0, q.Norm2(), 1e-8*scale)
		}
	}
}

func TestInsideMatchesSignedDistance(t *testing.T) {
	for _, c := range testMirrors() {
		for _, p := range testPoints() {
			assert.Equal(t, c.SignedDistance(p) >= 0, c.Inside(p))
		}
	}
}

func TestReflectCrossesMirror(t *testing.T) {
	for _, c := range testMirrors() {
		for _, p := range testPoints() {
			d := c.SignedDistance(p)
			if math.Abs(d) < 1e-9 {
				continue
			}
			r := c.SignedDistance(c.Reflect(p))
			assert.InDelta(t, -d, r, 1e-9*math.Max(1, math.Abs(d)))
		}
	}
}

func TestLineMirrorSemantics(t *testing.T) {
	// x >= 0.5 is the kept side of the line x = 0.5.
	c := LineMirror(1, 0, 0.5)
	assert.True(t, c.Inside(Lift(1, 3)))
	assert.False(t, c.Inside(Lift(0, 3)))
	assert.True(t, c.Inside(Lift(0.5, -2)))

	// Reflection across x = 0.5 maps x to 1-x.
	x, y := c.Reflect(Lift(2, 1)).Project()
	assert.InDelta(t, -1, x, 1e-12)
	assert.InDelta(t, 1, y, 1e-12)
}

func TestCircleMirrorSemantics(t *testing.T) {
	c := CircleMirror(0, 0, 2)
	assert.True(t, c.Inside(Lift(1, 0)))
	assert.False(t, c.Inside(Lift(3, 0)))

	// Inversion in the circle of radius 2 maps radius 1 to radius 4.
	x, y := c.Reflect(Lift(1, 0)).Project()
	assert.InDelta(t, 4, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestNegSwapsSides(t *testing.T) {
	c := CircleMirror(1, 1, 0.75)
	for _, p := range testPoints() {
		if c.SignedDistance(p) == 0 {
			continue
		}
		assert.NotEqual(t, c.Inside(p), c.Neg().Inside(p))
	}
}

func TestCircleReadback(t *testing.T) {
	cx, cy, r, ok := CircleMirror(2, -1, 0.5).Circle()
	require.True(t, ok)
	assert.InDelta(t, 2, cx, 1e-12)
	assert.InDelta(t, -1, cy, 1e-12)
	assert.InDelta(t, 0.5, r, 1e-12)

	// Orientation does not change the carrier circle.
	cx, cy, r, ok = CircleMirror(2, -1, 0.5).Neg().Circle()
	require.True(t, ok)
	assert.InDelta(t, 2, cx, 1e-12)
	assert.InDelta(t, -1, cy, 1e-12)
	assert.InDelta(t, 0.5, r, 1e-12)

	_, _, _, ok = LineMirror(0, 1, 0).Circle()
	assert.False(t, ok)
}

func TestLineReadback(t *testing.T) {
	nx, ny, d, ok := LineMirror(-0.6, 0.8, -0.25).Line()
	require.True(t, ok)
	assert.InDelta(t, -0.6, nx, 1e-12)
	assert.InDelta(t, 0.8, ny, 1e-12)
	assert.InDelta(t, -0.25, d, 1e-12)

	_, _, _, ok = CircleMirror(0, 0, 1).Line()
	assert.False(t, ok)
}
