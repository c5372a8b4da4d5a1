// Package metrics derives kinematic, spatial and shape-quality features
// from raw touch samples. All functions are pure sequential scans over
// ordered point slices; malformed or degenerate input yields zero-valued
// metrics rather than an error, because a single glitchy sample must not
// abort a session's analytics.
package metrics

import (
	"math"

	"tracekit/internal/geometry"
	"tracekit/internal/models"
	"tracekit/internal/refpath"
	"tracekit/internal/signal"
)

// ComputeStrokeFeatures summarizes one completed stroke. Callers must
// discard buffers with fewer than 2 points as accidental taps; such input
// returns a zero-valued summary. ideal may be nil or empty, in which case
// spatial deviation stays uncalculated.
func ComputeStrokeFeatures(cfg Config, strokeID int, points []models.TouchPoint, ideal *refpath.Path) models.StrokeFeatures {
	features := models.StrokeFeatures{StrokeID: strokeID}
	if len(points) < 2 {
		return features
	}

	features.DurationMs = points[len(points)-1].Timestamp - points[0].Timestamp

	var (
		totalDistance float64
		velocities    []float64
		prevVelocity  float64
		prevAccel     float64
		haveVelocity  bool
		haveAccel     bool
	)

	for i := 1; i < len(points); i++ {
		dt := points[i].Timestamp - points[i-1].Timestamp
		if dt > cfg.HesitationThresholdMs {
			features.PauseCount++
			features.PauseDurationMs += dt
		}
		if dt <= 0 {
			continue
		}
		dtSec := dt / 1000

		dist := geometry.Distance(
			geometry.Point{X: points[i-1].X, Y: points[i-1].Y},
			geometry.Point{X: points[i].X, Y: points[i].Y},
		)
		totalDistance += dist
		velocity := dist / dtSec
		velocities = append(velocities, velocity)

		if haveVelocity {
			accel := math.Abs(velocity-prevVelocity) / dtSec
			if accel > features.MaxAcceleration {
				features.MaxAcceleration = accel
			}
			if haveAccel {
				features.TotalJerk += math.Abs(accel-prevAccel) / dtSec
			}
			prevAccel = accel
			haveAccel = true
		}
		prevVelocity = velocity
		haveVelocity = true
	}

	features.PathLengthPx = totalDistance
	if len(velocities) > 0 {
		features.AvgVelocity = signal.Mean(velocities)
		features.PeakVelocity = signal.Max(velocities)
		features.VelocityCoV = signal.CoefficientOfVariation(velocities)
	}

	durSec := features.DurationMs / 1000
	if durSec > 0 {
		features.SampleRateHz = float64(len(points)) / durSec
		if features.MaxAcceleration > 0 {
			ratio := (totalDistance / durSec) / features.MaxAcceleration
			features.Ballistic = ratio > cfg.BallisticRatio
		}
	}

	features.ReversalCount = countReversals(cfg, points)
	features.Tremor = AnalyzeTremor(cfg, points)
	features.SpatialDeviation = spatialDeviation(points, ideal)

	return features
}

// countReversals slides a fixed stride window across the stroke and counts
// direction changes sharper than the configured angle. Both the incoming and
// outgoing vectors must exceed the minimum magnitude so near-stationary
// noise is ignored; after a hit the scan resumes stride+1 samples ahead
// (the stride bump plus the loop increment) so the windows straddling the
// same corner cannot count it again.
func countReversals(cfg Config, points []models.TouchPoint) int {
	stride := cfg.ReversalStride
	if stride < 1 || len(points) <= 2*stride {
		return 0
	}

	threshold := cfg.ReversalAngleDeg * math.Pi / 180
	count := 0

	for i := stride; i < len(points)-stride; i++ {
		inX := points[i].X - points[i-stride].X
		inY := points[i].Y - points[i-stride].Y
		outX := points[i+stride].X - points[i].X
		outY := points[i+stride].Y - points[i].Y

		if geometry.Magnitude(inX, inY) < cfg.ReversalMinVectorPx ||
			geometry.Magnitude(outX, outY) < cfg.ReversalMinVectorPx {
			continue
		}

		if geometry.AngleBetween(inX, inY, outX, outY) > threshold {
			count++
			i += stride
		}
	}
	return count
}

// spatialDeviation is the mean distance from each sample to its nearest
// guide point. Uncalculated when no reference geometry is available.
func spatialDeviation(points []models.TouchPoint, ideal *refpath.Path) models.MetricResult {
	if ideal == nil || ideal.Empty() || len(points) == 0 {
		return models.MetricResult{}
	}

	sum := 0.0
	for _, p := range points {
		sum += ideal.NearestDistance(p.X, p.Y)
	}
	return models.MetricResult{
		Value:      sum / float64(len(points)),
		Calculated: true,
		SampleSize: len(points),
	}
}
