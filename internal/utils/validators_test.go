package utils

import (
	"math"
	"testing"

	"tracekit/internal/models"
)

func validRecording() *models.SessionRecording {
	return &models.SessionRecording{
		Letter: "A",
		Strokes: []models.StrokeRecording{
			{Points: []models.TouchPoint{
				{X: 0, Y: 0, Timestamp: 0},
				{X: 5, Y: 5, Timestamp: 16},
				{X: 10, Y: 10, Timestamp: 33},
			}},
		},
	}
}

func TestValidateRecordingAccepts(t *testing.T) {
	if err := ValidateRecording(validRecording()); err != nil {
		t.Fatalf("ValidateRecording() = %v, want nil", err)
	}
}

func TestValidateRecordingRejectsEmptyLetter(t *testing.T) {
	rec := validRecording()
	rec.Letter = ""
	if err := ValidateRecording(rec); err == nil {
		t.Error("expected error for empty letter")
	}
}

func TestValidateRecordingRejectsNoStrokes(t *testing.T) {
	rec := validRecording()
	rec.Strokes = nil
	if err := ValidateRecording(rec); err == nil {
		t.Error("expected error for empty stroke list")
	}
}

func TestValidateRecordingRejectsNonMonotonicTimestamps(t *testing.T) {
	rec := validRecording()
	rec.Strokes[0].Points[2].Timestamp = 10
	if err := ValidateRecording(rec); err == nil {
		t.Error("expected error for decreasing timestamps")
	}
}

func TestValidateRecordingRejectsNaNTimestamp(t *testing.T) {
	rec := validRecording()
	rec.Strokes[0].Points[1].Timestamp = math.NaN()
	if err := ValidateRecording(rec); err == nil {
		t.Error("expected error for NaN timestamp")
	}
}

func TestValidateRecordingRejectsTooManyStrokes(t *testing.T) {
	rec := validRecording()
	stroke := rec.Strokes[0]
	for i := 0; i < maxStrokesPerSession; i++ {
		rec.Strokes = append(rec.Strokes, stroke)
	}
	if err := ValidateRecording(rec); err == nil {
		t.Error("expected error for oversized stroke list")
	}
}
