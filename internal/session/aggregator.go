// Package session owns the lifetime of one tracing session: it buffers raw
// touch samples, closes out strokes, and finalizes everything into the
// immutable SessionSummary.
//
// An Aggregator is single-writer: AddPoint/EndStroke/Summarize are not
// reentrant and concurrent producers must serialize through one event queue
// per session. No state is shared across sessions.
package session

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"tracekit/internal/classifier"
	"tracekit/internal/metrics"
	"tracekit/internal/models"
	"tracekit/internal/refpath"
	"tracekit/internal/risk"
)

// State is the aggregator lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateFinalized
)

// Aggregator accumulates one session's touch data and produces its summary.
type Aggregator struct {
	cfg   metrics.Config
	clf   classifier.Classifier
	ideal *refpath.Path
	log   *zap.Logger

	state        State
	letter       string
	raw          []models.TouchPoint
	current      []models.TouchPoint
	history      [][]models.TouchPoint
	strokes      []models.StrokeFeatures
	nextStrokeID int
}

// New builds an aggregator for one letter. ideal may be nil when no
// reference geometry exists; deviation and sequencing scoring degrade
// accordingly. clf may be nil, which behaves like classifier.Noop.
func New(cfg metrics.Config, clf classifier.Classifier, ideal *refpath.Path, log *zap.Logger) *Aggregator {
	if clf == nil {
		clf = classifier.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{cfg: cfg, clf: clf, ideal: ideal, log: log}
}

// State reports the current lifecycle phase.
func (a *Aggregator) State() State {
	return a.state
}

// StartSession clears every buffer and begins recording the given letter.
func (a *Aggregator) StartSession(letter string) {
	a.letter = letter
	a.raw = nil
	a.current = nil
	a.history = nil
	a.strokes = nil
	a.nextStrokeID = 0
	a.state = StateRecording
}

// AddPoint appends one sample to the raw buffer and the current stroke.
// Non-finite coordinates are absorbed silently; one glitchy sample must
// not abort the session's analytics. Calls outside Recording are dropped.
func (a *Aggregator) AddPoint(p models.TouchPoint) {
	if a.state != StateRecording {
		return
	}
	if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Timestamp) {
		return
	}
	a.raw = append(a.raw, p)
	a.current = append(a.current, p)
}

// EndStroke closes the current stroke: the buffered points move into
// history, per-stroke features are computed and appended, and the buffer
// clears. Fewer than 2 buffered points is a silent no-op (an accidental
// tap, not a stroke).
func (a *Aggregator) EndStroke() {
	if a.state != StateRecording || len(a.current) < 2 {
		a.current = nil
		return
	}

	snapshot := make([]models.TouchPoint, len(a.current))
	copy(snapshot, a.current)
	a.history = append(a.history, snapshot)

	features := metrics.ComputeStrokeFeatures(a.cfg, a.nextStrokeID, snapshot, a.ideal)
	a.strokes = append(a.strokes, features)
	a.nextStrokeID++
	a.current = nil
}

// StrokeCount reports the number of completed strokes.
func (a *Aggregator) StrokeCount() int {
	return len(a.strokes)
}

// Summarize finalizes the session. It is a one-shot terminal transition;
// behavior of a second call is undefined and callers must not retry. The
// classifier call is the only suspension point: on failure or timeout the
// summary is still produced with the explicit placeholder verdict.
func (a *Aggregator) Summarize(ctx context.Context, sessionID, learnerID string, sessionCtx models.SessionContext) models.SessionSummary {
	// An unfinished stroke at session end still counts.
	a.EndStroke()
	a.state = StateFinalized

	flat := flatten(a.history)

	summary := models.SessionSummary{
		Version:   models.SummaryVersion,
		SessionID: sessionID,
		LearnerID: learnerID,
		Letter:    a.letter,
		CreatedAt: time.Now().UTC(),
		Strokes:   a.strokes,
		Context:   sessionCtx,

		Kinematics:  metrics.ComputeSessionKinematics(a.cfg, flat),
		Shape:       metrics.ComputeShape(a.cfg, a.history),
		Sequencing:  metrics.ScoreSequencing(a.history, a.ideal),
		Orientation: metrics.ComputeOrientation(flat, a.ideal),

		// Deliberately uncalculated: the reference template is hidden from
		// the learner, so scoring against it would not reflect what the
		// child could see. Keep it an explicit placeholder.
		SpatialAccuracy: models.MetricResult{},
	}

	summary.Dynamics = a.dynamicsBlock()
	summary.Graphomotor = a.graphomotorBlock(flat)
	summary.ML = a.classify(ctx)
	summary.Risk = risk.Assess(a.riskInputs(summary))

	return summary
}

func (a *Aggregator) dynamicsBlock() models.DynamicsBlock {
	block := models.DynamicsBlock{}
	ballistic := 0
	for _, s := range a.strokes {
		if s.MaxAcceleration > block.MaxAcceleration {
			block.MaxAcceleration = s.MaxAcceleration
		}
		block.TotalJerk += s.TotalJerk
		if s.Ballistic {
			ballistic++
		}
	}
	if n := len(a.strokes); n > 0 {
		block.AvgJerkPerStroke = block.TotalJerk / float64(n)
		block.BallisticStrokeRatio = float64(ballistic) / float64(n)
	}
	return block
}

func (a *Aggregator) graphomotorBlock(flat []models.TouchPoint) models.GraphomotorBlock {
	block := models.GraphomotorBlock{
		Tremor: metrics.AverageTremor(a.cfg, a.strokes),
	}
	if len(flat) > 0 {
		block.TotalDurationMs = flat[len(flat)-1].Timestamp - flat[0].Timestamp
	}

	var rateSum float64
	for _, s := range a.strokes {
		block.PauseCount += s.PauseCount
		block.PauseDurationMs += s.PauseDurationMs
		block.ReversalCount += s.ReversalCount
		rateSum += s.SampleRateHz
	}
	if n := len(a.strokes); n > 0 {
		block.AvgSampleRateHz = rateSum / float64(n)
	}

	block.CompletenessScore = 1
	if a.ideal != nil && !a.ideal.Empty() {
		expected := a.ideal.ExpectedStrokeCount()
		if expected > 0 {
			block.CompletenessScore = math.Min(1, float64(len(a.strokes))/float64(expected))
		}
	}
	return block
}

// classify invokes the external collaborator and degrades to the explicit
// "unknown" placeholder on any failure, never treating absence as correct.
func (a *Aggregator) classify(ctx context.Context) models.MLResult {
	result, err := a.clf.Classify(ctx, a.history, a.letter)
	if err != nil || result == nil {
		a.log.Warn("character classifier unavailable, using placeholder verdict",
			zap.String("letter", a.letter),
			zap.Error(err),
		)
		return models.UnknownMLResult()
	}
	return *result
}

func (a *Aggregator) riskInputs(s models.SessionSummary) risk.Inputs {
	in := risk.Inputs{
		ReversalSimilarity:    math.Max(s.Orientation.MirrorSimilarity, s.Orientation.VerticalFlipSimilarity),
		Rotation90Similarity:  s.Orientation.Rotation90Similarity,
		Rotation180Similarity: s.Orientation.Rotation180Similarity,
		StrokeOrderScore:      s.Sequencing.OrderScore,
		StrokeQuality:         (s.Shape.Compactness + s.Shape.Symmetry) / 2,
		VelocityCoV:           s.Kinematics.VelocityCoV,
		TremorPower:           s.Graphomotor.Tremor.Power,
		MissingStrokes:        s.Sequencing.MissingStrokes,
		ExtraStrokes:          s.Sequencing.ExtraStrokes,
		ExpectedStrokes:       s.Sequencing.ExpectedStrokes,
	}
	if s.SpatialAccuracy.Calculated {
		in.SpatialAccuracy = s.SpatialAccuracy.Value
	}
	if n := len(a.strokes); n > 0 {
		in.PauseRate = float64(s.Graphomotor.PauseCount) / float64(n)
		in.ReversalRate = float64(s.Graphomotor.ReversalCount) / float64(n)
	}
	return in
}

func flatten(history [][]models.TouchPoint) []models.TouchPoint {
	var flat []models.TouchPoint
	for _, stroke := range history {
		flat = append(flat, stroke...)
	}
	return flat
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
