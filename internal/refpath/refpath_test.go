package refpath

import (
	"math"
	"testing"

	"tracekit/internal/models"
)

func singleLineLetter() *models.Letter {
	return &models.Letter{
		Char: "l",
		Strokes: []models.LetterStroke{
			{Segments: []models.Segment{
				{Kind: "line", FromX: 0, FromY: 0, ToX: 30, ToY: 40},
			}},
		},
	}
}

func TestGenerateSingleLineSegment(t *testing.T) {
	const samples = 10
	path := Generate(singleLineLetter(), samples)

	if len(path.Points) != samples+1 {
		t.Fatalf("expected %d points, got %d", samples+1, len(path.Points))
	}
	if len(path.StrokeBoundaries) != 1 || path.StrokeBoundaries[0] != samples {
		t.Errorf("expected boundaries [%d], got %v", samples, path.StrokeBoundaries)
	}
	// Segment (0,0)→(30,40) has length 50.
	if math.Abs(path.TotalLength-50) > 1e-9 {
		t.Errorf("total length got %f, want 50", path.TotalLength)
	}
}

func TestGenerateNormalsAreUnitAndPerpendicular(t *testing.T) {
	path := Generate(singleLineLetter(), 10)
	for _, p := range path.Points {
		mag := math.Sqrt(p.NormalX*p.NormalX + p.NormalY*p.NormalY)
		if math.Abs(mag-1) > 1e-9 {
			t.Errorf("normal at index %d not unit length: %f", p.Index, mag)
		}
		// Tangent of the line is (30,40); the dot product must vanish.
		if dot := p.NormalX*30 + p.NormalY*40; math.Abs(dot) > 1e-9 {
			t.Errorf("normal at index %d not perpendicular: dot=%f", p.Index, dot)
		}
	}
}

func TestGenerateMultiStrokeBoundaries(t *testing.T) {
	letter := &models.Letter{
		Char: "t",
		Strokes: []models.LetterStroke{
			{Segments: []models.Segment{{Kind: "line", FromX: 0, FromY: 0, ToX: 0, ToY: 100}}},
			{Segments: []models.Segment{{Kind: "line", FromX: -20, FromY: 30, ToX: 20, ToY: 30}}},
		},
	}
	path := Generate(letter, 5)

	if len(path.StrokeBoundaries) != 2 {
		t.Fatalf("expected 2 boundaries, got %v", path.StrokeBoundaries)
	}
	if path.StrokeBoundaries[0] >= path.StrokeBoundaries[1] {
		t.Errorf("boundaries not strictly increasing: %v", path.StrokeBoundaries)
	}
	if last := path.StrokeBoundaries[1]; last != len(path.Points)-1 {
		t.Errorf("last boundary %d, want %d", last, len(path.Points)-1)
	}
}

func TestGenerateBezierEndpoints(t *testing.T) {
	letter := &models.Letter{
		Char: "c",
		Strokes: []models.LetterStroke{
			{Segments: []models.Segment{{
				Kind: "bezier",
				FromX: 50, FromY: 0, ToX: 50, ToY: 100,
				Control1X: 0, Control1Y: 20, Control2X: 0, Control2Y: 80,
			}}},
		},
	}
	path := Generate(letter, 8)

	first := path.Points[0]
	last := path.Points[len(path.Points)-1]
	if first.X != 50 || first.Y != 0 {
		t.Errorf("first point got (%f,%f), want (50,0)", first.X, first.Y)
	}
	if last.X != 50 || last.Y != 100 {
		t.Errorf("last point got (%f,%f), want (50,100)", last.X, last.Y)
	}
}

func TestGenerateEmptyLetter(t *testing.T) {
	path := Generate(&models.Letter{Char: "x"}, 10)
	if !path.Empty() {
		t.Error("expected empty path for letter without strokes")
	}
	if path.NearestDistance(1, 2) != -1 {
		t.Error("nearest distance on empty path should be -1")
	}
}

func TestStrokeRange(t *testing.T) {
	letter := &models.Letter{
		Char: "t",
		Strokes: []models.LetterStroke{
			{Segments: []models.Segment{{Kind: "line", ToX: 10}}},
			{Segments: []models.Segment{{Kind: "line", ToY: 10}}},
		},
	}
	path := Generate(letter, 4)

	start0, end0 := path.StrokeRange(0)
	if start0 != 0 || end0 != 4 {
		t.Errorf("stroke 0 range got [%d,%d], want [0,4]", start0, end0)
	}
	start1, end1 := path.StrokeRange(1)
	if start1 != 4 || end1 != 9 {
		t.Errorf("stroke 1 range got [%d,%d], want [4,9]", start1, end1)
	}
}
