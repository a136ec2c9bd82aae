package conformal

// Point is a 2D model point lifted onto the null cone of the conformal
// representation. Components are ordered (M, P, X, Y) under the signature
// -+++, with M the timelike component.
type Point struct {
	M, P, X, Y float64
}

// Lift embeds a 2D model coordinate as a conformal null point using the
// paraboloid parametrization.
func Lift(x, y float64) Point {
	n := 0.5 * (x*x + y*y)
	return Point{M: n + 0.5, P: n - 0.5, X: x, Y: y}
}

// Project recovers the 2D model coordinate of a conformal point. It divides
// by M-P and is therefore undefined at the point at infinity; the render
// path never calls it on such points, so it exists for diagnostics only.
func (p Point) Project() (float64, float64) {
	d := p.M - p.P
	return p.X / d, p.Y / d
}

// Bilinear evaluates the signature form between two points. For lifted
// points it equals minus half the squared Euclidean distance between their
// model coordinates.
func (p Point) Bilinear(q Point) float64 {
	return -p.M*q.M + p.P*q.P + p.X*q.X + p.Y*q.Y
}

// Norm2 evaluates the quadratic form on p. Valid lifted points are null, so
// this is zero up to floating error.
func (p Point) Norm2() float64 {
	return p.Bilinear(p)
}
