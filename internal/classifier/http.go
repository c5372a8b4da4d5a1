package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tracekit/internal/models"
)

// HTTPClassifier calls a remote recognition service. The timeout bounds the
// single suspension point in session finalization; on any failure the
// caller falls back to the placeholder verdict.
type HTTPClassifier struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

func NewHTTPClassifier(url string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		URL:     url,
		Timeout: timeout,
		Client:  &http.Client{},
	}
}

type classifyRequest struct {
	Strokes        [][]classifyPoint `json:"strokes"`
	ExpectedLetter string            `json:"expectedLetter"`
}

type classifyPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, strokes [][]models.TouchPoint, expectedLetter string) (*models.MLResult, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	payload := classifyRequest{ExpectedLetter: expectedLetter}
	for _, stroke := range strokes {
		pts := make([]classifyPoint, len(stroke))
		for i, p := range stroke {
			pts[i] = classifyPoint{X: p.X, Y: p.Y}
		}
		payload.Strokes = append(payload.Strokes, pts)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result models.MLResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	// The contract caps the candidate list at 5, confidence-descending.
	if len(result.TopPredictions) > 5 {
		result.TopPredictions = result.TopPredictions[:5]
	}
	return &result, nil
}
