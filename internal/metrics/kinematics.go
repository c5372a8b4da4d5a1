package metrics

import (
	"tracekit/internal/geometry"
	"tracekit/internal/models"
	"tracekit/internal/signal"
)

// ComputeSessionKinematics derives the session velocity profile from the
// flattened point history. Raw point-to-point velocities are smoothed with a
// Savitzky-Golay filter before aggregation; that filter is used instead of a
// Gaussian because it does not attenuate the true peaks that ballistic and
// hesitation detection depend on. Gaps between strokes (non-positive or
// pen-lift deltas) contribute no velocity sample.
func ComputeSessionKinematics(cfg Config, points []models.TouchPoint) models.KinematicsBlock {
	block := models.KinematicsBlock{}
	if len(points) < 2 {
		return block
	}

	velocities := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		dt := points[i].Timestamp - points[i-1].Timestamp
		if dt <= 0 || dt > cfg.PenLiftGapMs {
			continue
		}
		dist := geometry.Distance(
			geometry.Point{X: points[i-1].X, Y: points[i-1].Y},
			geometry.Point{X: points[i].X, Y: points[i].Y},
		)
		velocities = append(velocities, dist/(dt/1000))
	}
	if len(velocities) == 0 {
		return block
	}

	smoothed := signal.SavitzkyGolay(velocities, cfg.SmoothingWindow)

	block.MeanVelocity = signal.Mean(smoothed)
	block.VelocityVariance = signal.Variance(smoothed)
	block.VelocityCoV = signal.CoefficientOfVariation(smoothed)
	block.PeakVelocity = signal.Max(smoothed)
	block.SampleCount = len(smoothed)
	return block
}
