// Package refpath turns a letter's vector stroke definition into a densely
// sampled guide path. The path is generated once per letter and shared
// read-only across sessions; analytics measures spatial deviation against
// it and the client renders it as the tracing guide.
package refpath

import (
	"tracekit/internal/geometry"
	"tracekit/internal/models"
)

// GuidePoint is one sample of the ideal path. The normal is unit length and
// perpendicular to the local tangent; it is consumed by guide-line rendering,
// not by the analytics itself.
type GuidePoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Index   int     `json:"index"`
	NormalX float64 `json:"normalX"`
	NormalY float64 `json:"normalY"`
}

// Path is the generated reference for one letter.
type Path struct {
	Points           []GuidePoint `json:"points"`
	StrokeBoundaries []int        `json:"strokeBoundaries"`
	TotalLength      float64      `json:"totalLength"`
}

// Empty reports whether no reference geometry is available. Callers must
// skip deviation scoring for empty paths.
func (p Path) Empty() bool {
	return len(p.Points) == 0
}

// ExpectedStrokeCount is the number of strokes in the letter definition the
// path was generated from.
func (p Path) ExpectedStrokeCount() int {
	return len(p.StrokeBoundaries)
}

// StrokeRange returns the [start, end] point-index range of stroke i.
func (p Path) StrokeRange(i int) (start, end int) {
	if i < 0 || i >= len(p.StrokeBoundaries) {
		return 0, 0
	}
	if i > 0 {
		start = p.StrokeBoundaries[i-1]
	}
	return start, p.StrokeBoundaries[i]
}

// Generate samples every segment of every stroke with samplesPerSegment+1
// evenly spaced parametric points, accumulating path length and recording
// the cumulative point count after each stroke. An empty stroke list yields
// an empty path.
func Generate(letter *models.Letter, samplesPerSegment int) Path {
	var path Path
	if letter == nil || len(letter.Strokes) == 0 || samplesPerSegment < 1 {
		return path
	}

	for _, stroke := range letter.Strokes {
		for _, seg := range stroke.Segments {
			for i := 0; i <= samplesPerSegment; i++ {
				t := float64(i) / float64(samplesPerSegment)
				p := samplePoint(seg, t)

				if n := len(path.Points); n > 0 {
					prev := path.Points[n-1]
					path.TotalLength += geometry.Distance(
						geometry.Point{X: prev.X, Y: prev.Y},
						geometry.Point{X: p.X, Y: p.Y},
					)
				}
				path.Points = append(path.Points, GuidePoint{
					X:     p.X,
					Y:     p.Y,
					Index: len(path.Points),
				})
			}
		}
		path.StrokeBoundaries = append(path.StrokeBoundaries, len(path.Points)-1)
	}

	computeNormals(path.Points)
	return path
}

func samplePoint(seg models.Segment, t float64) geometry.Point {
	from := geometry.Point{X: seg.FromX, Y: seg.FromY}
	to := geometry.Point{X: seg.ToX, Y: seg.ToY}
	if seg.Kind == "bezier" {
		c1 := geometry.Point{X: seg.Control1X, Y: seg.Control1Y}
		c2 := geometry.Point{X: seg.Control2X, Y: seg.Control2Y}
		return geometry.CubicBezier(from, c1, c2, to, t)
	}
	return geometry.Lerp(from, to, t)
}

// computeNormals fills in unit normals from neighbor differences: forward
// difference at the first point, backward at the last, central elsewhere.
// Zero-length tangents leave the normal at (0, 0).
func computeNormals(points []GuidePoint) {
	n := len(points)
	for i := range points {
		var tx, ty float64
		switch {
		case n < 2:
			continue
		case i == 0:
			tx = points[1].X - points[0].X
			ty = points[1].Y - points[0].Y
		case i == n-1:
			tx = points[n-1].X - points[n-2].X
			ty = points[n-1].Y - points[n-2].Y
		default:
			tx = points[i+1].X - points[i-1].X
			ty = points[i+1].Y - points[i-1].Y
		}

		mag := geometry.Magnitude(tx, ty)
		if mag == 0 {
			continue
		}
		points[i].NormalX = -ty / mag
		points[i].NormalY = tx / mag
	}
}

// NearestDistance returns the distance from (x, y) to the closest guide
// point, or -1 for an empty path.
func (p Path) NearestDistance(x, y float64) float64 {
	if p.Empty() {
		return -1
	}
	best := -1.0
	for _, gp := range p.Points {
		d := geometry.Distance(geometry.Point{X: x, Y: y}, geometry.Point{X: gp.X, Y: gp.Y})
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
