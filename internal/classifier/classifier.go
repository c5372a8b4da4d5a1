// Package classifier defines the external character-recognition
// collaborator. The model itself runs elsewhere (on-device or behind a
// service); the pipeline only depends on this interface and must survive
// the collaborator failing, timing out or returning nothing.
package classifier

import (
	"context"

	"tracekit/internal/models"
)

// Classifier returns a verdict for the drawn strokes against the expected
// letter. Implementations may return an error or a nil result; callers
// degrade to models.UnknownMLResult rather than failing the session.
type Classifier interface {
	Classify(ctx context.Context, strokes [][]models.TouchPoint, expectedLetter string) (*models.MLResult, error)
}

// Noop always reports the placeholder verdict. Used when no classifier is
// configured.
type Noop struct{}

func (Noop) Classify(ctx context.Context, strokes [][]models.TouchPoint, expectedLetter string) (*models.MLResult, error) {
	result := models.UnknownMLResult()
	return &result, nil
}
