package metrics

import (
	"math"

	"tracekit/internal/geometry"
	"tracekit/internal/models"
)

// ComputeShape derives shape-quality metrics for the drawn figure. strokes
// is the per-stroke point history; the flattened set feeds the global
// measures while closure and corners are judged per stroke.
func ComputeShape(cfg Config, strokes [][]models.TouchPoint) models.ShapeBlock {
	block := models.ShapeBlock{}

	flat := make([]geometry.Point, 0)
	for _, stroke := range strokes {
		for _, p := range stroke {
			flat = append(flat, geometry.Point{X: p.X, Y: p.Y})
		}
	}
	if len(flat) == 0 {
		return block
	}

	min, max := geometry.BoundingBox(flat)
	width := max.X - min.X
	height := max.Y - min.Y
	if height > 0 {
		block.AspectRatio = width / height
	}

	block.Compactness = compactness(flat)
	block.Symmetry = lateralSymmetry(flat)

	for _, stroke := range strokes {
		block.CornerCount += countCorners(cfg, stroke)
		if len(stroke) > cfg.ClosureMinPoints {
			block.ClosableStrokes++
			start := geometry.Point{X: stroke[0].X, Y: stroke[0].Y}
			end := geometry.Point{X: stroke[len(stroke)-1].X, Y: stroke[len(stroke)-1].Y}
			if geometry.Distance(start, end) < cfg.ClosureThresholdPx {
				block.ClosureRate++
			}
		}
	}
	if block.ClosableStrokes > 0 {
		block.ClosureRate /= float64(block.ClosableStrokes)
	}

	return block
}

// compactness is 4πA/P² over the convex hull. The hull area is used as the
// effective area so open letterforms are not scored as zero-area scribbles.
// A circle approaches 1; a straight line degenerates to 0.
func compactness(points []geometry.Point) float64 {
	hull := geometry.ConvexHull(points)
	area := geometry.PolygonArea(hull)
	perimeter := geometry.PolygonPerimeter(hull)
	if perimeter == 0 {
		return 0
	}
	return 4 * math.Pi * area / (perimeter * perimeter)
}

// lateralSymmetry scores the left/right point-count balance around the
// vertical centroid axis: 1 for a perfect split, 0 when every point sits on
// one side.
func lateralSymmetry(points []geometry.Point) float64 {
	c := geometry.Centroid(points)
	var left, right int
	for _, p := range points {
		if p.X < c.X {
			left++
		} else if p.X > c.X {
			right++
		}
	}
	total := left + right
	if total == 0 {
		return 1
	}
	balance := math.Abs(float64(left)-float64(right)) / float64(total)
	return 1 - balance
}

// countCorners walks consecutive segment pairs and counts turns sharper
// than the configured angle (interior angle below 180°-threshold, i.e.
// direction change above it).
func countCorners(cfg Config, stroke []models.TouchPoint) int {
	if len(stroke) < 3 {
		return 0
	}
	threshold := cfg.CornerAngleDeg * math.Pi / 180
	count := 0
	for i := 1; i < len(stroke)-1; i++ {
		inX := stroke[i].X - stroke[i-1].X
		inY := stroke[i].Y - stroke[i-1].Y
		outX := stroke[i+1].X - stroke[i].X
		outY := stroke[i+1].Y - stroke[i].Y
		if geometry.Magnitude(inX, inY) == 0 || geometry.Magnitude(outX, outY) == 0 {
			continue
		}
		if geometry.AngleBetween(inX, inY, outX, outY) > threshold {
			count++
		}
	}
	return count
}
