package models

import "time"

// SummaryVersion tags every persisted summary so downstream consumers can
// migrate across schema changes.
const SummaryVersion = 2

// KinematicsBlock aggregates the smoothed full-session velocity profile.
type KinematicsBlock struct {
	MeanVelocity     float64 `json:"meanVelocity"` // px/s
	VelocityVariance float64 `json:"velocityVariance"`
	VelocityCoV      float64 `json:"velocityCoV"`
	PeakVelocity     float64 `json:"peakVelocity"`
	SampleCount      int     `json:"sampleCount"`
}

// DynamicsBlock aggregates acceleration/jerk behavior across strokes.
type DynamicsBlock struct {
	MaxAcceleration      float64 `json:"maxAcceleration"`
	TotalJerk            float64 `json:"totalJerk"`
	AvgJerkPerStroke     float64 `json:"avgJerkPerStroke"`
	BallisticStrokeRatio float64 `json:"ballisticStrokeRatio"` // [0,1]
}

// GraphomotorBlock covers timing, hesitation and tremor at session level.
type GraphomotorBlock struct {
	TotalDurationMs   float64       `json:"totalDurationMs"`
	PauseCount        int           `json:"pauseCount"`
	PauseDurationMs   float64       `json:"pauseDurationMs"`
	AvgSampleRateHz   float64       `json:"avgSampleRateHz"`
	ReversalCount     int           `json:"reversalCount"`
	Tremor            TremorMetrics `json:"tremor"`
	CompletenessScore float64       `json:"completenessScore"` // [0,1]
}

// ShapeBlock holds shape-quality metrics of the drawn figure.
type ShapeBlock struct {
	AspectRatio     float64 `json:"aspectRatio"`
	Compactness     float64 `json:"compactness"` // 4πA/P², hull area
	Symmetry        float64 `json:"symmetry"`    // left/right point balance [0,1]
	CornerCount     int     `json:"cornerCount"`
	ClosureRate     float64 `json:"closureRate"` // closed fraction of closable strokes
	ClosableStrokes int     `json:"closableStrokes"`
}

// SequencingBlock compares drawn strokes against the reference definition.
type SequencingBlock struct {
	ExpectedStrokes int     `json:"expectedStrokes"`
	ActualStrokes   int     `json:"actualStrokes"`
	ExtraStrokes    int     `json:"extraStrokes"`
	MissingStrokes  int     `json:"missingStrokes"`
	OrderScore      float64 `json:"orderScore"` // [0,1]
}

// OrientationBlock scores the drawn shape against transformed variants of
// the reference geometry via Hu moment similarity.
type OrientationBlock struct {
	IdentitySimilarity     float64 `json:"identitySimilarity"`
	MirrorSimilarity       float64 `json:"mirrorSimilarity"` // horizontal flip
	VerticalFlipSimilarity float64 `json:"verticalFlipSimilarity"`
	Rotation90Similarity   float64 `json:"rotation90Similarity"`
	Rotation180Similarity  float64 `json:"rotation180Similarity"`
	LikelyReversal         bool    `json:"likelyReversal"`
	ReversalType           string  `json:"reversalType"` // horizontal_flip, vertical_flip, rotation_180, none
}

// Prediction is one classifier candidate.
type Prediction struct {
	Char       string  `json:"char"`
	Confidence float64 `json:"confidence"`
}

// MLResult is the external character classifier's verdict. When the
// collaborator fails the placeholder value from UnknownMLResult is stored,
// never a silent "correct".
type MLResult struct {
	PredictedChar    string       `json:"predictedChar"`
	Confidence       float64      `json:"confidence"`
	IsCorrect        bool         `json:"isCorrect"`
	TopPredictions   []Prediction `json:"topPredictions,omitempty"`
	ReversalDetected bool         `json:"reversalDetected"`
	ReversalType     string       `json:"reversalType"`
}

// UnknownMLResult is the explicit placeholder used when the classifier is
// unavailable or errored.
func UnknownMLResult() MLResult {
	return MLResult{
		PredictedChar: "?",
		ReversalType:  "none",
	}
}

// RiskLevel buckets the mean of the headline risk scores.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMild     RiskLevel = "mild"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskSevere   RiskLevel = "severe"
)

// Rank orders risk levels for monotonicity checks; higher is worse.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskMild:
		return 1
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	case RiskSevere:
		return 4
	default:
		return 0
	}
}

// RiskAssessment carries the six composite screening scores in [0,100].
// Advisory only, explicitly non-diagnostic.
type RiskAssessment struct {
	DyslexiaRisk               float64   `json:"dyslexiaRisk"`
	DysgraphiaRisk             float64   `json:"dysgraphiaRisk"`
	ReversalRisk               float64   `json:"reversalRisk"`
	AttentionDeficitRisk       float64   `json:"attentionDeficitRisk"`
	ProcessingSpeedDeficitRisk float64   `json:"processingSpeedDeficitRisk"`
	WorkingMemoryDeficitRisk   float64   `json:"workingMemoryDeficitRisk"`
	OverallRiskLevel           RiskLevel `json:"overallRiskLevel"`
}

// SessionSummary is the terminal artifact of the pipeline: created exactly
// once per session at finalization, immutable afterwards.
type SessionSummary struct {
	Version   int       `json:"version"`
	SessionID string    `json:"sessionId"`
	LearnerID string    `json:"learnerId,omitempty"`
	Letter    string    `json:"letter"`
	CreatedAt time.Time `json:"createdAt"`

	Kinematics  KinematicsBlock  `json:"kinematics"`
	Dynamics    DynamicsBlock    `json:"dynamics"`
	Graphomotor GraphomotorBlock `json:"graphomotor"`
	Shape       ShapeBlock       `json:"shape"`
	Sequencing  SequencingBlock  `json:"sequencing"`
	Orientation OrientationBlock `json:"orientation"`
	Risk        RiskAssessment   `json:"risk"`
	ML          MLResult         `json:"ml"`

	Strokes []StrokeFeatures `json:"strokes"`
	Context SessionContext   `json:"context"`

	// Accuracy against the hidden reference template. Deliberately left
	// uncalculated while the guide overlay is disabled for the learner;
	// do not reintroduce silently.
	SpatialAccuracy MetricResult `json:"spatialAccuracy"`
}
