package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tracekit/internal/config"
	"tracekit/internal/metrics"
	"tracekit/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func testLetterSet() *models.LetterSet {
	return &models.LetterSet{Letters: []models.Letter{
		{
			Char: "L",
			Strokes: []models.LetterStroke{
				{Segments: []models.Segment{
					{Kind: "line", FromX: 25, FromY: 10, ToX: 25, ToY: 90},
					{Kind: "line", FromX: 25, FromY: 90, ToX: 75, ToY: 90},
				}},
			},
		},
	}}
}

func newTestHandler(t *testing.T) *SessionsHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Conf = &config.Config{Analytics: metrics.DefaultConfig()}
	return NewSessionsHandler(zap.NewNop(), testLetterSet(), nil)
}

func TestSubmitSessionRejectsMalformedJSON(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader("{not json"))

	h.SubmitSession(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSubmitSessionRejectsInvalidRecording(t *testing.T) {
	h := newTestHandler(t)

	body := `{"letter":"L","strokes":[]}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/sessions",
		strings.NewReader(body))

	h.SubmitSession(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListLetters(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/letters", nil)

	h.ListLetters(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp struct {
		Letters []struct {
			Char            string `json:"char"`
			ExpectedStrokes int    `json:"expectedStrokes"`
		} `json:"letters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Letters) != 1 || resp.Letters[0].Char != "L" {
		t.Errorf("letters = %+v", resp.Letters)
	}
	if resp.Letters[0].ExpectedStrokes != 1 {
		t.Errorf("ExpectedStrokes = %d, want 1", resp.Letters[0].ExpectedStrokes)
	}
}

func TestSplitPenLiftsSegmentsContinuousStream(t *testing.T) {
	config.Conf = &config.Config{Analytics: metrics.DefaultConfig()}

	points := make([]models.TouchPoint, 0, 8)
	for i := 0; i < 4; i++ {
		points = append(points, models.TouchPoint{X: float64(i), Y: 0, Timestamp: float64(i * 16)})
	}
	// 500ms gap marks a pen lift.
	for i := 0; i < 4; i++ {
		points = append(points, models.TouchPoint{X: float64(i), Y: 50, Timestamp: 500 + float64(i*16)})
	}

	rec := models.SessionRecording{
		Letter:  "L",
		Strokes: []models.StrokeRecording{{Points: points}},
	}

	strokes := splitPenLifts(rec)
	if len(strokes) != 2 {
		t.Fatalf("len(strokes) = %d, want 2", len(strokes))
	}
	if len(strokes[0]) != 4 || len(strokes[1]) != 4 {
		t.Errorf("stroke lengths = %d, %d, want 4, 4", len(strokes[0]), len(strokes[1]))
	}
}

func TestSplitPenLiftsKeepsMarkedStrokes(t *testing.T) {
	config.Conf = &config.Config{Analytics: metrics.DefaultConfig()}

	rec := models.SessionRecording{
		Letter: "V",
		Strokes: []models.StrokeRecording{
			{Points: []models.TouchPoint{{Timestamp: 0}, {X: 1, Timestamp: 16}}},
			{Points: []models.TouchPoint{{Timestamp: 900}, {X: 1, Timestamp: 916}}},
		},
	}

	strokes := splitPenLifts(rec)
	if len(strokes) != 2 {
		t.Fatalf("len(strokes) = %d, want 2", len(strokes))
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)

	h.Health(c)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
