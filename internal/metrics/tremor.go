package metrics

import (
	"math"

	"tracekit/internal/geometry"
	"tracekit/internal/models"
	"tracekit/internal/signal"
)

// AnalyzeTremor measures high-frequency oscillation in one stroke. Each
// interior point's perpendicular deviation from the chord connecting the
// samples one stride before and after it isolates tremor from the intended
// path curvature. Amplitude is the mean deviation; frequency is the
// strongest PSD bin inside the clinical tremor band. Strokes with too few
// samples return zero metrics.
func AnalyzeTremor(cfg Config, points []models.TouchPoint) models.TremorMetrics {
	result := models.TremorMetrics{Severity: models.TremorNone}

	stride := cfg.TremorStride
	if stride < 1 || len(points) < cfg.TremorMinPoints || len(points) <= 2*stride {
		return result
	}

	deviations := make([]float64, 0, len(points)-2*stride)
	for i := stride; i < len(points)-stride; i++ {
		d := geometry.PerpendicularDistance(
			geometry.Point{X: points[i].X, Y: points[i].Y},
			geometry.Point{X: points[i-stride].X, Y: points[i-stride].Y},
			geometry.Point{X: points[i+stride].X, Y: points[i+stride].Y},
		)
		deviations = append(deviations, d)
	}
	if len(deviations) == 0 {
		return result
	}

	result.AmplitudePx = signal.Mean(deviations)

	durSec := (points[len(points)-1].Timestamp - points[0].Timestamp) / 1000
	if durSec <= 0 {
		return result
	}
	sampleRate := float64(len(points)) / durSec

	spectrum := signal.PSD(deviations, sampleRate)
	freq, power, ok := spectrum.PeakInBand(cfg.TremorBandLowHz, cfg.TremorBandHighHz)
	if !ok {
		return result
	}

	result.FrequencyHz = freq
	result.Power = math.Min(100, power*cfg.TremorPowerScale)
	result.Severity = tremorSeverity(cfg, result.Power)
	result.HasSignificantTremor = result.Severity != models.TremorNone

	return result
}

func tremorSeverity(cfg Config, power float64) models.TremorSeverity {
	switch {
	case power > cfg.TremorSeverePower:
		return models.TremorSevere
	case power > cfg.TremorModeratePower:
		return models.TremorModerate
	case power > cfg.TremorMildPower:
		return models.TremorMild
	default:
		return models.TremorNone
	}
}

// AverageTremor combines per-stroke tremor metrics into a session-level
// block. Severity is re-bucketed from the averaged power.
func AverageTremor(cfg Config, strokes []models.StrokeFeatures) models.TremorMetrics {
	result := models.TremorMetrics{Severity: models.TremorNone}
	if len(strokes) == 0 {
		return result
	}

	// Frequency is only meaningful where tremor was detected; averaging in
	// the zeros of tremor-free strokes would bias the session value low.
	withTremor := 0
	for _, s := range strokes {
		result.AmplitudePx += s.Tremor.AmplitudePx
		result.Power += s.Tremor.Power
		if s.Tremor.FrequencyHz > 0 {
			result.FrequencyHz += s.Tremor.FrequencyHz
			withTremor++
		}
	}
	n := float64(len(strokes))
	result.AmplitudePx /= n
	result.Power /= n
	if withTremor > 0 {
		result.FrequencyHz /= float64(withTremor)
	}
	result.Severity = tremorSeverity(cfg, result.Power)
	result.HasSignificantTremor = result.Severity != models.TremorNone

	return result
}
