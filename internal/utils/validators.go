package utils

import (
	"fmt"
	"math"
	"unicode/utf8"

	"tracekit/internal/models"
)

const (
	maxStrokesPerSession = 64
	maxPointsPerStroke   = 5000
)

// ValidateRecording rejects payloads the pipeline cannot interpret before
// any analysis runs. Non-finite coordinates inside otherwise valid strokes
// are tolerated here; the aggregator drops them point by point.
func ValidateRecording(rec *models.SessionRecording) error {
	if rec.Letter == "" || utf8.RuneCountInString(rec.Letter) > 4 {
		return fmt.Errorf("invalid letter %q", rec.Letter)
	}
	if len(rec.Strokes) == 0 {
		return fmt.Errorf("recording has no strokes")
	}
	if len(rec.Strokes) > maxStrokesPerSession {
		return fmt.Errorf("too many strokes: %d", len(rec.Strokes))
	}

	for i, stroke := range rec.Strokes {
		if len(stroke.Points) > maxPointsPerStroke {
			return fmt.Errorf("stroke %d has too many points: %d", i, len(stroke.Points))
		}
		var prev float64
		for j, p := range stroke.Points {
			if math.IsNaN(p.Timestamp) || math.IsInf(p.Timestamp, 0) {
				return fmt.Errorf("stroke %d point %d has invalid timestamp", i, j)
			}
			if j > 0 && p.Timestamp < prev {
				return fmt.Errorf("stroke %d timestamps not monotonic at point %d", i, j)
			}
			prev = p.Timestamp
		}
	}

	return nil
}
