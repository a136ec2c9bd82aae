package conformal

import "math"

// Mirror is a hyperplane ("circle") of the model, stored as a unit vector of
// the same (M, P, X, Y) signature as Point: one timelike component and three
// spacelike ones.
type Mirror struct {
	M, P, X, Y float64
}

// SignedDistance evaluates the bilinear form <c,p>. The value is a continuous
// penetration measure: positive on the kept side of the mirror, negative on
// the side that still needs a reflection.
func (c Mirror) SignedDistance(p Point) float64 {
	return -c.M*p.M + c.P*p.P + c.X*p.X + c.Y*p.Y
}

// Inside reports whether p lies on the kept side of c. Points exactly on the
// mirror count as inside, so a settled point is never re-reflected.
func (c Mirror) Inside(p Point) bool {
	return c.SignedDistance(p) >= 0
}

// Reflect applies the sandwich reflection of p through c. Reflecting twice
// through the same mirror returns the original point up to floating error,
// and a null point stays null.
func (c Mirror) Reflect(p Point) Point {
	d := 2 * c.SignedDistance(p)
	return Point{
		M: p.M - d*c.M,
		P: p.P - d*c.P,
		X: p.X - d*c.X,
		Y: p.Y - d*c.Y,
	}
}

// ReflectMirror applies the sandwich reflection of the mirror m through c.
// The result is again a unit mirror; reflecting m through itself flips its
// orientation.
func (c Mirror) ReflectMirror(m Mirror) Mirror {
	d := 2 * (-c.M*m.M + c.P*m.P + c.X*m.X + c.Y*m.Y)
	return Mirror{
		M: m.M - d*c.M,
		P: m.P - d*c.P,
		X: m.X - d*c.X,
		Y: m.Y - d*c.Y,
	}
}

// Norm2 evaluates the quadratic form on c. A well-formed mirror has norm one.
func (c Mirror) Norm2() float64 {
	return -c.M*c.M + c.P*c.P + c.X*c.X + c.Y*c.Y
}

// Neg flips the orientation of the mirror, swapping which side is kept.
func (c Mirror) Neg() Mirror {
	return Mirror{M: -c.M, P: -c.P, X: -c.X, Y: -c.Y}
}

// lineEps separates lines from very large circles when reading a mirror
// back as Euclidean geometry.
const lineEps = 1e-9

// Circle returns the Euclidean circle a unit mirror represents. ok is false
// when the mirror is a straight line.
func (c Mirror) Circle() (cx, cy, r float64, ok bool) {
	w := c.M - c.P
	if math.Abs(w) < lineEps {
		return 0, 0, 0, false
	}
	return c.X / w, c.Y / w, math.Abs(1 / w), true
}

// Line returns the Euclidean line n.x = d a unit mirror represents. ok is
// false when the mirror is a circle.
func (c Mirror) Line() (nx, ny, d float64, ok bool) {
	if math.Abs(c.M-c.P) >= lineEps {
		return 0, 0, 0, false
	}
	return c.X, c.Y, c.M, true
}

// LineMirror builds the mirror for the line n.x = d with unit normal
// (nx, ny). The kept side is the one the normal points into.
func LineMirror(nx, ny, d float64) Mirror {
	l := math.Hypot(nx, ny)
	if l == 0 {
		return Mirror{}
	}
	return Mirror{M: d / l, P: d / l, X: nx / l, Y: ny / l}
}

// CircleMirror builds the mirror for the circle with center (cx, cy) and
// radius r. The kept side is the inside of the circle.
func CircleMirror(cx, cy, r float64) Mirror {
	if r <= 0 {
		return Mirror{}
	}
	p := Lift(cx, cy)
	h := r * r / 2
	return Mirror{
		M: (p.M - h) / r,
		P: (p.P - h) / r,
		X: p.X / r,
		Y: p.Y / r,
	}
}
