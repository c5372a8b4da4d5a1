package risk

import (
	"testing"

	"tracekit/internal/models"
)

func TestAssessZeroInputsIsLow(t *testing.T) {
	a := Assess(Inputs{StrokeOrderScore: 1, StrokeQuality: 1})
	if a.OverallRiskLevel != models.RiskLow {
		t.Errorf("got %q, want low for clean inputs", a.OverallRiskLevel)
	}
	if a.DyslexiaRisk != 0 || a.DysgraphiaRisk != 0 {
		t.Errorf("expected zero headline scores, got %+v", a)
	}
}

func TestAssessWorstCase(t *testing.T) {
	a := Assess(Inputs{
		ReversalSimilarity:    1,
		Rotation90Similarity:  1,
		Rotation180Similarity: 1,
		StrokeOrderScore:      0,
		StrokeQuality:         0,
		VelocityCoV:           5,
		PauseRate:             10,
		TremorPower:           100,
		ReversalRate:          10,
		MissingStrokes:        3,
		ExtraStrokes:          5,
		ExpectedStrokes:       3,
	})
	if a.DyslexiaRisk != 100 {
		t.Errorf("dyslexia risk got %f, want 100", a.DyslexiaRisk)
	}
	if a.OverallRiskLevel != models.RiskSevere {
		t.Errorf("got %q, want severe", a.OverallRiskLevel)
	}
}

func TestScoresStayInRange(t *testing.T) {
	a := Assess(Inputs{
		ReversalSimilarity: 0.5,
		StrokeOrderScore:   0.5,
		StrokeQuality:      0.5,
		VelocityCoV:        100,
		PauseRate:          100,
	})
	scores := []float64{
		a.DyslexiaRisk, a.DysgraphiaRisk, a.ReversalRisk,
		a.AttentionDeficitRisk, a.ProcessingSpeedDeficitRisk, a.WorkingMemoryDeficitRisk,
	}
	for i, s := range scores {
		if s < 0 || s > 100 {
			t.Errorf("score %d out of range: %f", i, s)
		}
	}
}

func TestBucketLevelCutoffs(t *testing.T) {
	cases := []struct {
		mean float64
		want models.RiskLevel
	}{
		{0, models.RiskLow},
		{15, models.RiskLow},
		{16, models.RiskMild},
		{30, models.RiskMild},
		{31, models.RiskModerate},
		{50, models.RiskModerate},
		{51, models.RiskHigh},
		{70, models.RiskHigh},
		{71, models.RiskSevere},
		{100, models.RiskSevere},
	}
	for _, tc := range cases {
		if got := BucketLevel(tc.mean); got != tc.want {
			t.Errorf("mean %f got %q, want %q", tc.mean, got, tc.want)
		}
	}
}

func TestBucketLevelMonotonic(t *testing.T) {
	prev := BucketLevel(0)
	for mean := 0.0; mean <= 100; mean++ {
		level := BucketLevel(mean)
		if level.Rank() < prev.Rank() {
			t.Fatalf("bucket rank decreased at mean %f: %q after %q", mean, level, prev)
		}
		prev = level
	}
}

func TestAssessMonotonicInReversalSimilarity(t *testing.T) {
	base := Inputs{StrokeOrderScore: 1, StrokeQuality: 1}
	prevRank := -1
	prevScore := -1.0
	for sim := 0.0; sim <= 1.0; sim += 0.05 {
		in := base
		in.ReversalSimilarity = sim
		a := Assess(in)
		if a.DyslexiaRisk < prevScore {
			t.Fatalf("dyslexia risk decreased at similarity %f", sim)
		}
		if a.OverallRiskLevel.Rank() < prevRank {
			t.Fatalf("overall level rank decreased at similarity %f", sim)
		}
		prevScore = a.DyslexiaRisk
		prevRank = a.OverallRiskLevel.Rank()
	}
}
