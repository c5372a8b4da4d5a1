package metrics

import (
	"tracekit/internal/geometry"
	"tracekit/internal/models"
	"tracekit/internal/refpath"
)

// SegmentStrokes partitions a flat touch stream into discrete strokes at
// pen-lift gaps: a timestamp discontinuity longer than cfg.PenLiftGapMs
// starts a new stroke. Strokes with fewer than 2 samples are discarded as
// accidental taps.
func SegmentStrokes(cfg Config, points []models.TouchPoint) [][]models.TouchPoint {
	if len(points) == 0 {
		return nil
	}

	var strokes [][]models.TouchPoint
	current := []models.TouchPoint{points[0]}

	for i := 1; i < len(points); i++ {
		if points[i].Timestamp-points[i-1].Timestamp > cfg.PenLiftGapMs {
			if len(current) >= 2 {
				strokes = append(strokes, current)
			}
			current = nil
		}
		current = append(current, points[i])
	}
	if len(current) >= 2 {
		strokes = append(strokes, current)
	}
	return strokes
}

// ScoreSequencing compares the drawn strokes against the reference
// definition: the stroke-count delta splits into extra/missing (each
// clamped at 0), and ordering is scored by greedily matching each drawn
// stroke to the expected stroke whose start point is nearest, then taking
// the fraction of consecutive matches in non-decreasing reference order.
// Ties keep first-match order; no full alignment is attempted. With no
// reference the order score defaults to 1.
func ScoreSequencing(strokes [][]models.TouchPoint, ideal *refpath.Path) models.SequencingBlock {
	block := models.SequencingBlock{
		ActualStrokes: len(strokes),
		OrderScore:    1,
	}
	if ideal == nil || ideal.Empty() {
		return block
	}

	block.ExpectedStrokes = ideal.ExpectedStrokeCount()
	if diff := block.ActualStrokes - block.ExpectedStrokes; diff > 0 {
		block.ExtraStrokes = diff
	} else {
		block.MissingStrokes = -diff
	}

	if len(strokes) < 2 {
		return block
	}

	matches := make([]int, len(strokes))
	for i, stroke := range strokes {
		matches[i] = nearestExpectedStroke(stroke[0], ideal)
	}

	ordered := 0
	for i := 1; i < len(matches); i++ {
		if matches[i] >= matches[i-1] {
			ordered++
		}
	}
	block.OrderScore = float64(ordered) / float64(len(matches)-1)
	return block
}

// nearestExpectedStroke returns the index of the reference stroke whose
// start point is closest to the drawn stroke's first sample.
func nearestExpectedStroke(start models.TouchPoint, ideal *refpath.Path) int {
	best := 0
	bestDist := -1.0
	for i := 0; i < ideal.ExpectedStrokeCount(); i++ {
		s, _ := ideal.StrokeRange(i)
		gp := ideal.Points[s]
		d := geometry.Distance(
			geometry.Point{X: start.X, Y: start.Y},
			geometry.Point{X: gp.X, Y: gp.Y},
		)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
