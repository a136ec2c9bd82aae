package tiling

import (
	"fmt"
	"math"

	"coxtile/internal/conformal"
)

// Mirrors builds the generating mirror set for a linear Schläfli symbol of
// rank 3 ({p,q}) or rank 4 ({p,q,r}). Mirrors come back oriented so their
// kept sides intersect in the fundamental domain, with an interior point of
// that domain as the second return value.
func Mirrors(vals []int) ([]conformal.Mirror, conformal.Point, error) {
	switch len(vals) {
	case 2:
		ms, ref, err := rank3(vals[0], vals[1])
		if err != nil {
			return nil, conformal.Point{}, err
		}
		return ms[:], ref, nil
	case 3:
		ms, ref, err := rank4(vals[0], vals[1], vals[2])
		if err != nil {
			return nil, conformal.Point{}, err
		}
		return ms[:], ref, nil
	default:
		return nil, conformal.Point{}, fmt.Errorf("unsupported rank %d", len(vals)+1)
	}
}

// rank3 builds the (p, q, 2) triangle: the x-axis, a second line through the
// origin at angle pi/p, and a circle centered on the x-axis through (1, 0)
// meeting the second line at angle pi/q. The circle is perpendicular to the
// x-axis by construction. In the Euclidean limit the circle flattens to the
// line x = 1.
func rank3(p, q int) ([3]conformal.Mirror, conformal.Point, error) {
	if p < 2 || q < 2 {
		return [3]conformal.Mirror{}, conformal.Point{}, fmt.Errorf("bad triangle symbol {%d,%d}", p, q)
	}
	a1 := math.Pi / float64(p)
	a2 := math.Pi / float64(q)

	m1 := conformal.LineMirror(0, 1, 0)
	m2 := conformal.LineMirror(math.Sin(a1), -math.Cos(a1), 0)

	var m3 conformal.Mirror
	den := math.Cos(a2) - math.Sin(a1)
	if math.Abs(den) < 1e-12 {
		m3 = conformal.LineMirror(-1, 0, -1)
	} else {
		c0 := math.Cos(a2) / den
		m3 = conformal.CircleMirror(c0, 0, math.Abs(c0-1))
	}

	ref := conformal.Lift(0.5*math.Cos(a1/2), 0.5*math.Sin(a1/2))
	ms := [3]conformal.Mirror{m1, m2, m3}
	for i, m := range ms {
		if !m.Inside(ref) {
			ms[i] = m.Neg()
		}
	}
	return ms, ref, nil
}

// rank4 appends a fourth mirror to the {p,q} triangle satisfying
// <m4,m1> = <m4,m2> = 0 and <m4,m3> = -cos(pi/r), then reflects the whole
// set through the new mirror. The raw solution places the extra domain wall
// around the inverted copy of the triangle, so the world is generated
// backwards and folded into view, mirroring how the fourth wall is reached.
func rank4(p, q, r int) ([4]conformal.Mirror, conformal.Point, error) {
	if r < 2 {
		return [4]conformal.Mirror{}, conformal.Point{}, fmt.Errorf("bad symbol {%d,%d,%d}", p, q, r)
	}
	tri, _, err := rank3(p, q)
	if err != nil {
		return [4]conformal.Mirror{}, conformal.Point{}, err
	}

	targets := [3]float64{0, 0, -math.Cos(math.Pi / float64(r))}
	roots, err := solveFourthMirror(tri, targets)
	if err != nil {
		return [4]conformal.Mirror{}, conformal.Point{}, err
	}

	for _, c4 := range roots {
		var ms [4]conformal.Mirror
		for i, m := range tri {
			ms[i] = c4.ReflectMirror(m).Neg()
		}
		ms[3] = c4
		if ref, ok := findInterior(ms[:]); ok {
			return ms, ref, nil
		}
	}
	return [4]conformal.Mirror{}, conformal.Point{}, fmt.Errorf("symbol {%d,%d,%d} has no realizable fourth mirror", p, q, r)
}

// solveFourthMirror solves <x,tri[i]> = targets[i], <x,x> = 1 for the two
// candidate mirrors: the particular solution of the linear constraints plus
// a multiple of their common orthogonal direction.
func solveFourthMirror(tri [3]conformal.Mirror, targets [3]float64) ([]conformal.Mirror, error) {
	// Rows of the linear system under the -+++ metric.
	var a [3][4]float64
	for i, m := range tri {
		a[i] = [4]float64{-m.M, m.P, m.X, m.Y}
	}

	n := cross4(a[0], a[1], a[2])
	x0, err := leastSquares3x4(a, targets)
	if err != nil {
		return nil, err
	}

	qn := quadForm(n)
	b := bilinForm(x0, n)
	q0 := quadForm(x0)

	var alphas []float64
	if math.Abs(qn) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil, fmt.Errorf("degenerate fourth-mirror constraints")
		}
		alphas = []float64{(1 - q0) / (2 * b)}
	} else {
		disc := b*b - qn*(q0-1)
		if disc < 0 {
			return nil, fmt.Errorf("fourth-mirror angles are not realizable")
		}
		s := math.Sqrt(disc)
		alphas = []float64{(-b + s) / qn, (-b - s) / qn}
	}

	out := make([]conformal.Mirror, 0, len(alphas))
	for _, alpha := range alphas {
		out = append(out, conformal.Mirror{
			M: x0[0] + alpha*n[0],
			P: x0[1] + alpha*n[1],
			X: x0[2] + alpha*n[2],
			Y: x0[3] + alpha*n[3],
		})
	}
	return out, nil
}

// findInterior grid-searches the model plane for a point on the kept side of
// every mirror.
func findInterior(ms []conformal.Mirror) (conformal.Point, bool) {
	for _, radius := range []float64{0.05, 0.1, 0.2, 0.35, 0.5, 0.75, 1, 1.5, 2, 3} {
		for step := 0; step < 720; step++ {
			theta := float64(step) * math.Pi / 360
			p := conformal.Lift(radius*math.Cos(theta), radius*math.Sin(theta))
			ok := true
			for _, m := range ms {
				if !m.Inside(p) {
					ok = false
					break
				}
			}
			if ok {
				return p, true
			}
		}
	}
	return conformal.Point{}, false
}

// quadForm evaluates the -+++ quadratic form.
func quadForm(v [4]float64) float64 {
	return -v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// bilinForm evaluates the -+++ bilinear form.
func bilinForm(u, v [4]float64) float64 {
	return -u[0]*v[0] + u[1]*v[1] + u[2]*v[2] + u[3]*v[3]
}

// cross4 returns the 4D generalized cross product, Euclidean-orthogonal to
// all three arguments.
func cross4(a, b, c [4]float64) [4]float64 {
	det3 := func(a0, a1, a2, b0, b1, b2, c0, c1, c2 float64) float64 {
		return a0*(b1*c2-b2*c1) - a1*(b0*c2-b2*c0) + a2*(b0*c1-b1*c0)
	}
	return [4]float64{
		det3(a[1], a[2], a[3], b[1], b[2], b[3], c[1], c[2], c[3]),
		-det3(a[0], a[2], a[3], b[0], b[2], b[3], c[0], c[2], c[3]),
		det3(a[0], a[1], a[3], b[0], b[1], b[3], c[0], c[1], c[3]),
		-det3(a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2]),
	}
}

// leastSquares3x4 returns the minimum-norm solution of the full-rank system
// a*x = t via the normal equations.
func leastSquares3x4(a [3][4]float64, t [3]float64) ([4]float64, error) {
	var g [3][3]float64 // a * a^T
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				g[i][j] += a[i][k] * a[j][k]
			}
		}
	}
	det := g[0][0]*(g[1][1]*g[2][2]-g[1][2]*g[2][1]) -
		g[0][1]*(g[1][0]*g[2][2]-g[1][2]*g[2][0]) +
		g[0][2]*(g[1][0]*g[2][1]-g[1][1]*g[2][0])
	if math.Abs(det) < 1e-14 {
		return [4]float64{}, fmt.Errorf("mirror constraints are degenerate")
	}

	// Cramer's rule for (a a^T) y = t.
	var y [3]float64
	for col := 0; col < 3; col++ {
		m := g
		for row := 0; row < 3; row++ {
			m[row][col] = t[row]
		}
		d := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
		y[col] = d / det
	}

	var x [4]float64
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			x[k] += a[i][k] * y[i]
		}
	}
	return x, nil
}
