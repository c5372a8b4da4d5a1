package models

// MetricResult distinguishes "computed as exactly this value" from "not
// computed in this version". Consumers must check Calculated before treating
// Value as signal; placeholder blocks in the session summary are represented
// as Calculated=false, never as a silently zeroed number.
type MetricResult struct {
	Value      float64 `json:"value"`
	Calculated bool    `json:"calculated"`
	SampleSize int     `json:"sampleSize,omitempty"`
}

// TremorSeverity is a coarse step-function bucket of tremor power.
type TremorSeverity string

const (
	TremorNone     TremorSeverity = "none"
	TremorMild     TremorSeverity = "mild"
	TremorModerate TremorSeverity = "moderate"
	TremorSevere   TremorSeverity = "severe"
)

// TremorMetrics describes high-frequency oscillation superimposed on the
// intended motion of one stroke.
type TremorMetrics struct {
	FrequencyHz          float64        `json:"frequency"`
	AmplitudePx          float64        `json:"amplitude"`
	Power                float64        `json:"power"` // normalized to [0,100]
	HasSignificantTremor bool           `json:"hasSignificantTremor"`
	Severity             TremorSeverity `json:"severity"`
}

// StrokeFeatures is the per-stroke summary produced when a stroke ends.
// Never mutated after creation; owned by the session aggregator.
type StrokeFeatures struct {
	StrokeID        int           `json:"strokeId"`
	DurationMs      float64       `json:"durationMs"`
	PauseCount      int           `json:"pauseCount"`
	PauseDurationMs float64       `json:"pauseDurationMs"`
	PathLengthPx    float64       `json:"pathLengthPx"`
	AvgVelocity     float64       `json:"avgVelocity"` // px/s
	PeakVelocity    float64       `json:"peakVelocity"`
	VelocityCoV     float64       `json:"velocityCoV"`
	MaxAcceleration float64       `json:"maxAcceleration"`
	TotalJerk       float64       `json:"totalJerk"`
	ReversalCount   int           `json:"reversalCount"`
	Ballistic       bool          `json:"ballistic"`
	SampleRateHz    float64       `json:"sampleRateHz"`
	Tremor          TremorMetrics `json:"tremor"`

	// Mean distance to the reference path. Not calculated when the guide
	// overlay is disabled or no reference geometry exists for the letter.
	SpatialDeviation MetricResult `json:"spatialDeviation"`
}
