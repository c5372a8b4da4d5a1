package models

// TouchPoint is one raw sample from the tracing surface. Timestamps are
// milliseconds, monotonic within a session. Pressure is normalized to [0,1];
// devices without pressure report 0.
type TouchPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp float64 `json:"timestamp"`
	Pressure  float64 `json:"pressure"`
}

// StrokeRecording is one pen-down-to-pen-up gesture as captured on device.
type StrokeRecording struct {
	StrokeID int          `json:"strokeId"`
	Points   []TouchPoint `json:"points"`
}

// SessionRecording is the raw payload a client submits for analysis: the
// letter being traced plus every stroke in the order it was drawn.
type SessionRecording struct {
	Letter    string            `json:"letter"`
	LearnerID string            `json:"learnerId,omitempty"`
	Strokes   []StrokeRecording `json:"strokes"`
	Context   SessionContext    `json:"context"`
}

// SessionContext carries device/input metadata recorded alongside the trace.
// It is stored verbatim in the summary for downstream quality filtering.
type SessionContext struct {
	Device       string  `json:"device,omitempty"`
	InputMethod  string  `json:"inputMethod,omitempty"` // "finger", "stylus"
	ScreenWidth  float64 `json:"screenWidth,omitempty"`
	ScreenHeight float64 `json:"screenHeight,omitempty"`
	AppVersion   string  `json:"appVersion,omitempty"`
}
