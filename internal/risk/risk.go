// Package risk maps session features into coarse composite screening
// scores. The scores are advisory, fixed heuristic weightings, not a
// diagnosis. Every weight and cutoff below is a product constant; changing
// one is a product decision, not a bug fix.
package risk

import (
	"tracekit/internal/geometry"
	"tracekit/internal/models"
)

// Inputs are the upstream features the aggregator feeds in, each already
// normalized to [0,1] unless noted.
type Inputs struct {
	// Orientation similarities against transformed reference variants.
	ReversalSimilarity    float64 // best of mirror/vertical-flip
	Rotation90Similarity  float64
	Rotation180Similarity float64

	StrokeOrderScore float64 // [0,1], 1 = drawn in reference order
	StrokeQuality    float64 // [0,1], composite shape quality
	SpatialAccuracy  float64 // [0,1], 0 when not computed

	VelocityCoV     float64 // coefficient of variation, unbounded
	PauseRate       float64 // pauses per stroke, unbounded
	TremorPower     float64 // [0,100]
	ReversalRate    float64 // direction reversals per stroke, unbounded
	MissingStrokes  int
	ExtraStrokes    int
	ExpectedStrokes int
}

// Level cutoffs for the overall bucket, applied to the mean of the three
// headline scores (dyslexia, dysgraphia, attention).
const (
	mildCutoff     = 15.0
	moderateCutoff = 30.0
	highCutoff     = 50.0
	severeCutoff   = 70.0
)

// Assess computes the six composite scores and the overall bucket. It is a
// pure function and monotonic in every input risk signal.
func Assess(in Inputs) models.RiskAssessment {
	a := models.RiskAssessment{}

	a.DyslexiaRisk = scale(
		0.4*in.ReversalSimilarity +
			0.3*(1-in.StrokeOrderScore) +
			0.3*max2(in.Rotation90Similarity, in.Rotation180Similarity))

	a.DysgraphiaRisk = scale(
		0.4*(1-in.StrokeQuality) +
			0.3*unit(in.TremorPower/100) +
			0.3*unit(in.VelocityCoV/2))

	a.ReversalRisk = scale(
		0.6*in.ReversalSimilarity +
			0.4*in.Rotation180Similarity)

	a.AttentionDeficitRisk = scale(
		0.4*unit(in.PauseRate/3) +
			0.3*unit(in.VelocityCoV/2) +
			0.3*unit(float64(in.ExtraStrokes)/3))

	a.ProcessingSpeedDeficitRisk = scale(
		0.5*unit(in.PauseRate/3) +
			0.5*unit(in.ReversalRate/4))

	a.WorkingMemoryDeficitRisk = scale(
		0.6*missingRatio(in.MissingStrokes, in.ExpectedStrokes) +
			0.4*(1-in.StrokeOrderScore))

	mean := (a.DyslexiaRisk + a.DysgraphiaRisk + a.AttentionDeficitRisk) / 3
	a.OverallRiskLevel = BucketLevel(mean)

	return a
}

// BucketLevel maps a mean score in [0,100] onto the categorical level.
func BucketLevel(mean float64) models.RiskLevel {
	switch {
	case mean > severeCutoff:
		return models.RiskSevere
	case mean > highCutoff:
		return models.RiskHigh
	case mean > moderateCutoff:
		return models.RiskModerate
	case mean > mildCutoff:
		return models.RiskMild
	default:
		return models.RiskLow
	}
}

// scale maps a [0,1] composite onto [0,100].
func scale(v float64) float64 {
	return 100 * geometry.Clamp(v, 0, 1)
}

// unit clamps an open-ended normalized signal into [0,1].
func unit(v float64) float64 {
	return geometry.Clamp(v, 0, 1)
}

func missingRatio(missing, expected int) float64 {
	if expected <= 0 {
		return 0
	}
	return unit(float64(missing) / float64(expected))
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
