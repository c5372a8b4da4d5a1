package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Point{0, 0}, Point{3, 4})
	if d != 5 {
		t.Errorf("got %f, want 5", d)
	}
}

func TestAngleBetweenOpposite(t *testing.T) {
	angle := AngleBetween(1, 0, -1, 0)
	if math.Abs(angle-math.Pi) > 1e-9 {
		t.Errorf("got %f, want pi", angle)
	}
}

func TestAngleBetweenZeroVector(t *testing.T) {
	if a := AngleBetween(0, 0, 1, 1); a != 0 {
		t.Errorf("got %f, want 0 for zero-length vector", a)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	p0 := Point{0, 0}
	p3 := Point{10, 10}
	start := CubicBezier(p0, Point{3, 0}, Point{7, 10}, p3, 0)
	end := CubicBezier(p0, Point{3, 0}, Point{7, 10}, p3, 1)
	if start != p0 {
		t.Errorf("t=0 got %v, want %v", start, p0)
	}
	if end != p3 {
		t.Errorf("t=1 got %v, want %v", end, p3)
	}
}

func TestCubicBezierMidpointOfStraightLine(t *testing.T) {
	// Control points on the line keep the curve on the line.
	mid := CubicBezier(Point{0, 0}, Point{2, 2}, Point{4, 4}, Point{6, 6}, 0.5)
	if math.Abs(mid.X-3) > 1e-9 || math.Abs(mid.Y-3) > 1e-9 {
		t.Errorf("got %v, want (3,3)", mid)
	}
}

func TestConvexHullSquare(t *testing.T) {
	points := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{5, 5}, {2, 3}, // interior
	}
	hull := ConvexHull(points)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull points, got %d: %v", len(hull), hull)
	}
	if area := PolygonArea(hull); math.Abs(area-100) > 1e-9 {
		t.Errorf("hull area got %f, want 100", area)
	}
	if per := PolygonPerimeter(hull); math.Abs(per-40) > 1e-9 {
		t.Errorf("hull perimeter got %f, want 40", per)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	line := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	hull := ConvexHull(line)
	if area := PolygonArea(hull); area != 0 {
		t.Errorf("collinear hull area got %f, want 0", area)
	}
}

func TestPerpendicularDistance(t *testing.T) {
	d := PerpendicularDistance(Point{5, 3}, Point{0, 0}, Point{10, 0})
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("got %f, want 3", d)
	}
}

func TestLinearRegressionExactLine(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 5, 7, 9}
	slope, intercept, r2 := LinearRegression(xs, ys)
	if math.Abs(slope-2) > 1e-9 {
		t.Errorf("slope got %f, want 2", slope)
	}
	if math.Abs(intercept-1) > 1e-9 {
		t.Errorf("intercept got %f, want 1", intercept)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("r2 got %f, want 1", r2)
	}
}

func TestCurvatureOfCircle(t *testing.T) {
	// Three points on a radius-10 circle should give curvature 1/10.
	r := 10.0
	a := Point{r * math.Cos(0.0), r * math.Sin(0.0)}
	b := Point{r * math.Cos(0.3), r * math.Sin(0.3)}
	c := Point{r * math.Cos(0.6), r * math.Sin(0.6)}
	k := Curvature(a, b, c)
	if math.Abs(k-1/r) > 1e-6 {
		t.Errorf("got %f, want %f", k, 1/r)
	}
}

func TestCurvatureCollinear(t *testing.T) {
	if k := Curvature(Point{0, 0}, Point{1, 1}, Point{2, 2}); k != 0 {
		t.Errorf("got %f, want 0", k)
	}
}

func TestHuMomentsTranslationInvariance(t *testing.T) {
	shape := []Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}, {2, 1}, {1, 2}}
	shifted := make([]Point, len(shape))
	for i, p := range shape {
		shifted[i] = Point{p.X + 57, p.Y - 23}
	}
	a := HuMoments(shape)
	b := HuMoments(shifted)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			t.Errorf("moment %d differs under translation: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestHuMomentsEmpty(t *testing.T) {
	hu := HuMoments(nil)
	for i, v := range hu {
		if v != 0 {
			t.Errorf("moment %d got %f, want 0", i, v)
		}
	}
}
