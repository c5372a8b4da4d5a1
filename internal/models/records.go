package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// SessionSummaryRecord is the persisted form of a SessionSummary: headline
// metrics flattened into queryable columns, the full nested summary kept as
// raw JSON for future analysis, and the per-stroke velocity profile stored
// as a Postgres array for charting without re-parsing the blob.
type SessionSummaryRecord struct {
	ID        int       `gorm:"primaryKey"`
	SessionID string    `gorm:"uniqueIndex;size:36"`
	LearnerID string    `gorm:"index;size:36"`
	Letter    string    `gorm:"size:8"`
	CreatedAt time.Time `gorm:"index"`

	MeanVelocity    float64
	VelocityCoV     float64
	PeakVelocity    float64
	TremorPower     float64
	ReversalCount   int
	PauseCount      int
	StrokeCount     int
	OrderScore      float64
	Compactness     float64
	OverallRisk     string `gorm:"size:16"`
	DyslexiaRisk    float64
	DysgraphiaRisk  float64
	AttentionRisk   float64
	PredictedChar   string `gorm:"size:8"`
	PredictionScore float64
	IsCorrect       bool

	StrokeVelocities pq.Float64Array `gorm:"type:float8[]"`

	RawSummary json.RawMessage `gorm:"type:jsonb"`
}

func (SessionSummaryRecord) TableName() string { return "session_summaries" }

// StrokeFeatureRecord is one per-stroke child row of a session summary.
type StrokeFeatureRecord struct {
	ID              int    `gorm:"primaryKey"`
	SessionID       string `gorm:"index;size:36"`
	StrokeIndex     int
	DurationMs      float64
	PauseCount      int
	AvgVelocity     float64
	PeakVelocity    float64
	MaxAcceleration float64
	TotalJerk       float64
	ReversalCount   int
	Ballistic       bool
	TremorPower     float64
	TremorSeverity  string `gorm:"size:16"`
	SampleRateHz    float64
	CreatedAt       time.Time
}

func (StrokeFeatureRecord) TableName() string { return "stroke_features" }

// NewSessionSummaryRecord flattens a summary for persistence. The raw JSON
// is the versioned artifact of record; the columns exist for queries.
func NewSessionSummaryRecord(summary SessionSummary) (SessionSummaryRecord, []StrokeFeatureRecord, error) {
	raw, err := json.Marshal(summary)
	if err != nil {
		return SessionSummaryRecord{}, nil, err
	}

	record := SessionSummaryRecord{
		SessionID: summary.SessionID,
		LearnerID: summary.LearnerID,
		Letter:    summary.Letter,
		CreatedAt: summary.CreatedAt,

		MeanVelocity:    summary.Kinematics.MeanVelocity,
		VelocityCoV:     summary.Kinematics.VelocityCoV,
		PeakVelocity:    summary.Kinematics.PeakVelocity,
		TremorPower:     summary.Graphomotor.Tremor.Power,
		ReversalCount:   summary.Graphomotor.ReversalCount,
		PauseCount:      summary.Graphomotor.PauseCount,
		StrokeCount:     len(summary.Strokes),
		OrderScore:      summary.Sequencing.OrderScore,
		Compactness:     summary.Shape.Compactness,
		OverallRisk:     string(summary.Risk.OverallRiskLevel),
		DyslexiaRisk:    summary.Risk.DyslexiaRisk,
		DysgraphiaRisk:  summary.Risk.DysgraphiaRisk,
		AttentionRisk:   summary.Risk.AttentionDeficitRisk,
		PredictedChar:   summary.ML.PredictedChar,
		PredictionScore: summary.ML.Confidence,
		IsCorrect:       summary.ML.IsCorrect,
		RawSummary:      raw,
	}

	strokes := make([]StrokeFeatureRecord, 0, len(summary.Strokes))
	for i, s := range summary.Strokes {
		record.StrokeVelocities = append(record.StrokeVelocities, s.AvgVelocity)
		strokes = append(strokes, StrokeFeatureRecord{
			SessionID:       summary.SessionID,
			StrokeIndex:     i,
			DurationMs:      s.DurationMs,
			PauseCount:      s.PauseCount,
			AvgVelocity:     s.AvgVelocity,
			PeakVelocity:    s.PeakVelocity,
			MaxAcceleration: s.MaxAcceleration,
			TotalJerk:       s.TotalJerk,
			ReversalCount:   s.ReversalCount,
			Ballistic:       s.Ballistic,
			TremorPower:     s.Tremor.Power,
			TremorSeverity:  string(s.Tremor.Severity),
			SampleRateHz:    s.SampleRateHz,
			CreatedAt:       summary.CreatedAt,
		})
	}

	return record, strokes, nil
}
