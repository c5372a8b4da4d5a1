package metrics

import (
	"testing"

	"tracekit/internal/models"
	"tracekit/internal/refpath"
)

// threeStrokeStream builds a flat stream with two 300ms pen-lift gaps.
func threeStrokeStream() []models.TouchPoint {
	var points []models.TouchPoint
	ts := 0.0
	for stroke := 0; stroke < 3; stroke++ {
		for i := 0; i < 10; i++ {
			points = append(points, models.TouchPoint{
				X:         float64(stroke * 50),
				Y:         float64(i * 10),
				Timestamp: ts,
			})
			ts += 20
		}
		ts += 300
	}
	return points
}

func TestSegmentStrokesSplitsAtGaps(t *testing.T) {
	strokes := SegmentStrokes(DefaultConfig(), threeStrokeStream())
	if len(strokes) != 3 {
		t.Fatalf("expected 3 strokes, got %d", len(strokes))
	}
	for i, s := range strokes {
		if len(s) != 10 {
			t.Errorf("stroke %d has %d points, want 10", i, len(s))
		}
	}
}

func TestSegmentStrokesDiscardsTaps(t *testing.T) {
	points := []models.TouchPoint{
		{X: 0, Timestamp: 0},
		{X: 5, Timestamp: 20},
		// Isolated single sample after a lift: an accidental tap.
		{X: 100, Timestamp: 500},
		{X: 0, Timestamp: 900},
		{X: 5, Timestamp: 920},
	}
	strokes := SegmentStrokes(DefaultConfig(), points)
	if len(strokes) != 2 {
		t.Fatalf("expected 2 strokes after tap filtering, got %d", len(strokes))
	}
}

func TestSegmentStrokesEmpty(t *testing.T) {
	if strokes := SegmentStrokes(DefaultConfig(), nil); strokes != nil {
		t.Errorf("expected nil for empty stream, got %v", strokes)
	}
}

func threeStrokeLetterPath() *refpath.Path {
	letter := &models.Letter{
		Char: "A",
		Strokes: []models.LetterStroke{
			{Segments: []models.Segment{{Kind: "line", FromX: 0, FromY: 100, ToX: 25, ToY: 0}}},
			{Segments: []models.Segment{{Kind: "line", FromX: 25, FromY: 0, ToX: 50, ToY: 100}}},
			{Segments: []models.Segment{{Kind: "line", FromX: 10, FromY: 60, ToX: 40, ToY: 60}}},
		},
	}
	path := refpath.Generate(letter, 10)
	return &path
}

func TestSequencingMatchedCounts(t *testing.T) {
	ideal := threeStrokeLetterPath()
	strokes := [][]models.TouchPoint{
		{{X: 0, Y: 100, Timestamp: 0}, {X: 25, Y: 0, Timestamp: 400}},
		{{X: 25, Y: 0, Timestamp: 900}, {X: 50, Y: 100, Timestamp: 1300}},
		{{X: 10, Y: 60, Timestamp: 1800}, {X: 40, Y: 60, Timestamp: 2000}},
	}
	block := ScoreSequencing(strokes, ideal)

	if block.ExtraStrokes != 0 || block.MissingStrokes != 0 {
		t.Errorf("extra=%d missing=%d, want 0/0", block.ExtraStrokes, block.MissingStrokes)
	}
	if block.OrderScore != 1 {
		t.Errorf("order score got %f, want 1 for in-order strokes", block.OrderScore)
	}
}

func TestSequencingExtraStroke(t *testing.T) {
	ideal := threeStrokeLetterPath()
	strokes := [][]models.TouchPoint{
		{{X: 0, Y: 100}, {X: 25, Y: 0}},
		{{X: 25, Y: 0}, {X: 50, Y: 100}},
		{{X: 10, Y: 60}, {X: 40, Y: 60}},
		{{X: 40, Y: 60}, {X: 45, Y: 65}},
	}
	block := ScoreSequencing(strokes, ideal)
	if block.ExtraStrokes != 1 {
		t.Errorf("extra strokes got %d, want 1", block.ExtraStrokes)
	}
	if block.MissingStrokes != 0 {
		t.Errorf("missing strokes got %d, want 0", block.MissingStrokes)
	}
}

func TestSequencingMissingStroke(t *testing.T) {
	ideal := threeStrokeLetterPath()
	strokes := [][]models.TouchPoint{
		{{X: 0, Y: 100}, {X: 25, Y: 0}},
	}
	block := ScoreSequencing(strokes, ideal)
	if block.MissingStrokes != 2 {
		t.Errorf("missing strokes got %d, want 2", block.MissingStrokes)
	}
}

func TestSequencingOutOfOrder(t *testing.T) {
	ideal := threeStrokeLetterPath()
	// Crossbar drawn first, then the two legs.
	strokes := [][]models.TouchPoint{
		{{X: 10, Y: 60}, {X: 40, Y: 60}},
		{{X: 0, Y: 100}, {X: 25, Y: 0}},
		{{X: 25, Y: 0}, {X: 50, Y: 100}},
	}
	block := ScoreSequencing(strokes, ideal)
	if block.OrderScore >= 1 {
		t.Errorf("order score got %f, want < 1 for out-of-order strokes", block.OrderScore)
	}
}

func TestSequencingNoReference(t *testing.T) {
	block := ScoreSequencing([][]models.TouchPoint{{{X: 0}, {X: 1}}}, nil)
	if block.OrderScore != 1 {
		t.Errorf("order score got %f, want 1 with no reference", block.OrderScore)
	}
	if block.ExpectedStrokes != 0 {
		t.Errorf("expected strokes got %d, want 0", block.ExpectedStrokes)
	}
}
