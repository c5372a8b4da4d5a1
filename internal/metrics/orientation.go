package metrics

import (
	"math"

	"tracekit/internal/geometry"
	"tracekit/internal/models"
	"tracekit/internal/refpath"
)

// similarityFalloff converts a normalized overlay distance into a (0,1]
// similarity; larger values discount mismatched shapes harder.
const similarityFalloff = 4

// ComputeOrientation scores the drawn figure against mirrored, flipped and
// rotated variants of the reference geometry. Variants are compared with a
// point-set overlay distance that normalizes translation and scale but not
// rotation or reflection, so each transformed variant keeps its own signal:
// a drawn 'b' overlays the horizontally flipped reference better than the
// upright one, and that is the letter-reversal signal the risk stage
// consumes. An empty reference yields a zero block.
func ComputeOrientation(points []models.TouchPoint, ideal *refpath.Path) models.OrientationBlock {
	block := models.OrientationBlock{ReversalType: "none"}
	if ideal == nil || ideal.Empty() || len(points) == 0 {
		return block
	}

	drawn := make([]geometry.Point, len(points))
	for i, p := range points {
		drawn[i] = geometry.Point{X: p.X, Y: p.Y}
	}

	ref := make([]geometry.Point, len(ideal.Points))
	for i, p := range ideal.Points {
		ref[i] = geometry.Point{X: p.X, Y: p.Y}
	}

	c := geometry.Centroid(ref)

	block.IdentitySimilarity = shapeSimilarity(drawn, ref)
	block.MirrorSimilarity = shapeSimilarity(drawn, transform(ref, c, flipH))
	block.VerticalFlipSimilarity = shapeSimilarity(drawn, transform(ref, c, flipV))
	block.Rotation90Similarity = shapeSimilarity(drawn, transform(ref, c, rotate90))
	block.Rotation180Similarity = shapeSimilarity(drawn, transform(ref, c, rotate180))

	type candidate struct {
		similarity float64
		kind       string
	}
	candidates := []candidate{
		{block.MirrorSimilarity, "horizontal_flip"},
		{block.VerticalFlipSimilarity, "vertical_flip"},
		{block.Rotation180Similarity, "rotation_180"},
	}
	best := candidate{kind: "none"}
	for _, cand := range candidates {
		if cand.similarity > best.similarity {
			best = cand
		}
	}
	if best.similarity > block.IdentitySimilarity {
		block.LikelyReversal = true
		block.ReversalType = best.kind
	}

	return block
}

func flipH(p, c geometry.Point) geometry.Point {
	return geometry.Point{X: 2*c.X - p.X, Y: p.Y}
}

func flipV(p, c geometry.Point) geometry.Point {
	return geometry.Point{X: p.X, Y: 2*c.Y - p.Y}
}

func rotate90(p, c geometry.Point) geometry.Point {
	return geometry.Point{X: c.X + (p.Y - c.Y), Y: c.Y - (p.X - c.X)}
}

func rotate180(p, c geometry.Point) geometry.Point {
	return geometry.Point{X: 2*c.X - p.X, Y: 2*c.Y - p.Y}
}

func transform(points []geometry.Point, c geometry.Point, f func(geometry.Point, geometry.Point) geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	for i, p := range points {
		out[i] = f(p, c)
	}
	return out
}

// shapeSimilarity scores how closely two point sets overlay after both are
// centered on their centroid and scaled to unit RMS radius. The symmetric
// mean nearest-point distance maps to (0,1]: identical shapes score 1.
// Rotation-sensitive: a rotated copy of a shape scores strictly below the
// shape itself unless the shape is rotationally symmetric.
func shapeSimilarity(a, b []geometry.Point) float64 {
	na := normalizeShape(a)
	nb := normalizeShape(b)
	if len(na) == 0 || len(nb) == 0 {
		return 0
	}
	distance := (meanNearestDistance(na, nb) + meanNearestDistance(nb, na)) / 2
	return 1 / (1 + similarityFalloff*distance)
}

// normalizeShape translates the centroid to the origin and scales the RMS
// radius to 1 so overlay distances compare across sizes and positions.
// A degenerate all-coincident shape is returned centered but unscaled.
func normalizeShape(points []geometry.Point) []geometry.Point {
	if len(points) == 0 {
		return nil
	}

	c := geometry.Centroid(points)
	out := make([]geometry.Point, len(points))
	var sum float64
	for i, p := range points {
		out[i] = geometry.Point{X: p.X - c.X, Y: p.Y - c.Y}
		sum += out[i].X*out[i].X + out[i].Y*out[i].Y
	}

	radius := math.Sqrt(sum / float64(len(points)))
	if radius == 0 {
		return out
	}
	for i := range out {
		out[i].X /= radius
		out[i].Y /= radius
	}
	return out
}

func meanNearestDistance(from, to []geometry.Point) float64 {
	var sum float64
	for _, p := range from {
		best := math.Inf(1)
		for _, q := range to {
			if d := geometry.Distance(p, q); d < best {
				best = d
			}
		}
		sum += best
	}
	return sum / float64(len(from))
}
