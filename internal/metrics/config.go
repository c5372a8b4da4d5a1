package metrics

// Config consolidates the pipeline's tunable constants. The defaults are
// product decisions, not learned parameters; changing a weight or threshold
// requires explicit sign-off. The config file's `analytics` section maps
// onto this struct so the constants stay testable rather than scattered as
// magic numbers.
type Config struct {
	// A gap between consecutive samples longer than this counts as a pause.
	HesitationThresholdMs float64 `mapstructure:"hesitation_threshold_ms"`

	// (distance/duration)/maxAcceleration above this flags a stroke as
	// ballistic (smooth, pre-planned) rather than corrective.
	BallisticRatio float64 `mapstructure:"ballistic_ratio"`

	// Reversal detection: look-ahead/behind stride in samples, the minimum
	// vector magnitude that filters near-stationary noise, and the turn
	// angle that counts as a reversal.
	ReversalStride      int     `mapstructure:"reversal_stride"`
	ReversalMinVectorPx float64 `mapstructure:"reversal_min_vector_px"`
	ReversalAngleDeg    float64 `mapstructure:"reversal_angle_deg"`

	// Tremor analysis: chord stride for perpendicular deviation, minimum
	// samples, clinical frequency band, PSD-to-percent scaling and the
	// severity step cutoffs. Scale and cutoffs are provisional defaults
	// pending domain validation.
	TremorStride        int     `mapstructure:"tremor_stride"`
	TremorMinPoints     int     `mapstructure:"tremor_min_points"`
	TremorBandLowHz     float64 `mapstructure:"tremor_band_low_hz"`
	TremorBandHighHz    float64 `mapstructure:"tremor_band_high_hz"`
	TremorPowerScale    float64 `mapstructure:"tremor_power_scale"`
	TremorMildPower     float64 `mapstructure:"tremor_mild_power"`
	TremorModeratePower float64 `mapstructure:"tremor_moderate_power"`
	TremorSeverePower   float64 `mapstructure:"tremor_severe_power"`

	// Session kinematics smoothing window (odd).
	SmoothingWindow int `mapstructure:"smoothing_window"`

	// Shape quality: corner turn-angle threshold, closure distance and the
	// minimum stroke size for closure scoring.
	CornerAngleDeg     float64 `mapstructure:"corner_angle_deg"`
	ClosureThresholdPx float64 `mapstructure:"closure_threshold_px"`
	ClosureMinPoints   int     `mapstructure:"closure_min_points"`

	// A timestamp discontinuity longer than this signals a pen lift when
	// segmenting a flat point stream.
	PenLiftGapMs float64 `mapstructure:"pen_lift_gap_ms"`

	// Guide-path sampling density per segment.
	SamplesPerSegment int `mapstructure:"samples_per_segment"`
}

// DefaultConfig returns the shipped constants.
func DefaultConfig() Config {
	return Config{
		HesitationThresholdMs: 150,
		BallisticRatio:        2.0,
		ReversalStride:        4,
		ReversalMinVectorPx:   3,
		ReversalAngleDeg:      135,
		TremorStride:          5,
		TremorMinPoints:       10,
		TremorBandLowHz:       2,
		TremorBandHighHz:      12,
		TremorPowerScale:      1000,
		TremorMildPower:       10,
		TremorModeratePower:   20,
		TremorSeverePower:     30,
		SmoothingWindow:       5,
		CornerAngleDeg:        90,
		ClosureThresholdPx:    20,
		ClosureMinPoints:      5,
		PenLiftGapMs:          200,
		SamplesPerSegment:     20,
	}
}
