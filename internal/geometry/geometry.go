package geometry

import (
	"math"
	"sort"
)

// Point is a plain 2D coordinate used by the pure geometry routines.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Magnitude returns the length of the vector (x, y).
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// AngleBetween returns the angle in radians between vectors (x1,y1) and
// (x2,y2), in [0, π]. Zero-length vectors yield 0.
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	m1 := Magnitude(x1, y1)
	m2 := Magnitude(x2, y2)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := (x1*x2 + y1*y2) / (m1 * m2)
	return math.Acos(Clamp(cos, -1, 1))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CubicBezier evaluates a cubic Bezier at parameter t using the Bernstein
// polynomial form.
func CubicBezier(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// PathLength sums Euclidean distances between consecutive points.
func PathLength(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// Centroid returns the arithmetic mean of the points. Empty input yields the
// origin.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// BoundingBox returns min and max corners of the point set. Empty input
// yields two zero points.
func BoundingBox(points []Point) (Point, Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// PerpendicularDistance returns the distance from p to the infinite line
// through a and b. Degenerate lines (a == b) fall back to point distance.
func PerpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := Magnitude(dx, dy)
	if length == 0 {
		return Distance(p, a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / length
}

// ConvexHull computes the convex hull of the point set via the monotone chain
// algorithm. The hull is returned in counter-clockwise order without the
// closing point. Fewer than 3 points are returned as-is.
func ConvexHull(points []Point) []Point {
	n := len(points)
	if n < 3 {
		out := make([]Point, n)
		copy(out, points)
		return out
	}

	sorted := make([]Point, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	hull := make([]Point, 0, 2*n)
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

// PolygonArea returns the absolute shoelace area of the polygon.
func PolygonArea(polygon []Point) float64 {
	if len(polygon) < 3 {
		return 0
	}
	sum := 0.0
	for i := range polygon {
		j := (i + 1) % len(polygon)
		sum += polygon[i].X*polygon[j].Y - polygon[j].X*polygon[i].Y
	}
	return math.Abs(sum) / 2
}

// PolygonPerimeter returns the closed perimeter of the polygon.
func PolygonPerimeter(polygon []Point) float64 {
	if len(polygon) < 2 {
		return 0
	}
	total := PathLength(polygon)
	total += Distance(polygon[len(polygon)-1], polygon[0])
	return total
}

// LinearRegression fits y = slope*x + intercept over the samples and returns
// slope, intercept and r². Fewer than 2 samples or zero x-variance yield
// zeros.
func LinearRegression(xs, ys []float64) (slope, intercept, r2 float64) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, 0, 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var ssXX, ssXY, ssYY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		ssXX += dx * dx
		ssXY += dx * dy
		ssYY += dy * dy
	}
	if ssXX == 0 {
		return 0, 0, 0
	}

	slope = ssXY / ssXX
	intercept = meanY - slope*meanX
	if ssYY == 0 {
		r2 = 1
	} else {
		r2 = (ssXY * ssXY) / (ssXX * ssYY)
	}
	return slope, intercept, r2
}

// Curvature estimates the unsigned curvature at b from the three consecutive
// samples a, b, c using the circumscribed-circle formula. Collinear or
// degenerate triples yield 0.
func Curvature(a, b, c Point) float64 {
	ab := Distance(a, b)
	bc := Distance(b, c)
	ca := Distance(c, a)
	if ab == 0 || bc == 0 || ca == 0 {
		return 0
	}
	// Twice the signed triangle area.
	area2 := math.Abs((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
	return 2 * area2 / (ab * bc * ca)
}

// HuMoments computes the seven Hu moment invariants of the point set treated
// as a binary mass distribution. Empty input yields all zeros.
func HuMoments(points []Point) [7]float64 {
	var hu [7]float64
	if len(points) == 0 {
		return hu
	}

	c := Centroid(points)
	m := func(p, q int) float64 {
		sum := 0.0
		for _, pt := range points {
			sum += math.Pow(pt.X-c.X, float64(p)) * math.Pow(pt.Y-c.Y, float64(q))
		}
		return sum
	}

	mu00 := float64(len(points))
	norm := func(p, q int) float64 {
		gamma := float64(p+q)/2 + 1
		return m(p, q) / math.Pow(mu00, gamma)
	}

	n20 := norm(2, 0)
	n02 := norm(0, 2)
	n11 := norm(1, 1)
	n30 := norm(3, 0)
	n03 := norm(0, 3)
	n21 := norm(2, 1)
	n12 := norm(1, 2)

	hu[0] = n20 + n02
	hu[1] = math.Pow(n20-n02, 2) + 4*n11*n11
	hu[2] = math.Pow(n30-3*n12, 2) + math.Pow(3*n21-n03, 2)
	hu[3] = math.Pow(n30+n12, 2) + math.Pow(n21+n03, 2)
	hu[4] = (n30-3*n12)*(n30+n12)*(math.Pow(n30+n12, 2)-3*math.Pow(n21+n03, 2)) +
		(3*n21-n03)*(n21+n03)*(3*math.Pow(n30+n12, 2)-math.Pow(n21+n03, 2))
	hu[5] = (n20-n02)*(math.Pow(n30+n12, 2)-math.Pow(n21+n03, 2)) +
		4*n11*(n30+n12)*(n21+n03)
	hu[6] = (3*n21-n03)*(n30+n12)*(math.Pow(n30+n12, 2)-3*math.Pow(n21+n03, 2)) -
		(n30-3*n12)*(n21+n03)*(3*math.Pow(n30+n12, 2)-math.Pow(n21+n03, 2))

	return hu
}
