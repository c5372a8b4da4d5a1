package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tracekit/internal/classifier"
	"tracekit/internal/config"
	"tracekit/internal/metrics"
	"tracekit/internal/models"
	"tracekit/internal/refpath"
	"tracekit/internal/repository"
	"tracekit/internal/session"
	"tracekit/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionsHandler struct {
	log     *zap.Logger
	letters *models.LetterSet
	paths   map[string]refpath.Path
	clf     classifier.Classifier
}

// NewSessionsHandler pre-generates the reference path for every letter in
// the set so per-request work is just the analysis itself.
func NewSessionsHandler(log *zap.Logger, letters *models.LetterSet, clf classifier.Classifier) *SessionsHandler {
	paths := make(map[string]refpath.Path, len(letters.Letters))
	for i := range letters.Letters {
		l := &letters.Letters[i]
		paths[l.Char] = refpath.Generate(l, config.Conf.Analytics.SamplesPerSegment)
	}
	if clf == nil {
		clf = classifier.Noop{}
	}
	return &SessionsHandler{log: log, letters: letters, paths: paths, clf: clf}
}

// SubmitSession ingests one complete recorded tracing session, runs the
// full analysis pipeline and persists the resulting summary.
func (h *SessionsHandler) SubmitSession(c *gin.Context) {
	var rec models.SessionRecording
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.log.Error("Failed to bind session recording", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recording payload"})
		return
	}

	if err := utils.ValidateRecording(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	learnerID := h.resolveLearnerID(c, rec.LearnerID)

	var ideal *refpath.Path
	if p, ok := h.paths[rec.Letter]; ok {
		ideal = &p
	} else {
		h.log.Warn("No reference path for letter, scoring without guide",
			zap.String("letter", rec.Letter))
	}

	agg := session.New(config.Conf.Analytics, h.clf, ideal, h.log)
	agg.StartSession(rec.Letter)
	for _, stroke := range splitPenLifts(rec) {
		for _, p := range stroke {
			agg.AddPoint(p)
		}
		agg.EndStroke()
	}

	sessionID := uuid.NewString()
	summary := agg.Summarize(c.Request.Context(), sessionID, learnerID, rec.Context)

	if err := repository.SaveSessionSummaryTx(summary); err != nil {
		h.log.Error("Failed to save session summary",
			zap.Error(err), zap.String("sessionID", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	h.log.Info("Session analyzed",
		zap.String("sessionID", sessionID),
		zap.String("letter", rec.Letter),
		zap.Int("strokes", len(summary.Strokes)),
		zap.String("risk", string(summary.Risk.OverallRiskLevel)))

	c.JSON(http.StatusCreated, summary)
}

// splitPenLifts recovers stroke boundaries the client did not mark. Clients
// sending one continuous stream get server-side segmentation by timestamp
// gap; explicitly separated strokes pass through untouched.
func splitPenLifts(rec models.SessionRecording) [][]models.TouchPoint {
	if len(rec.Strokes) == 1 {
		return metrics.SegmentStrokes(config.Conf.Analytics, rec.Strokes[0].Points)
	}
	strokes := make([][]models.TouchPoint, 0, len(rec.Strokes))
	for _, s := range rec.Strokes {
		strokes = append(strokes, s.Points)
	}
	return strokes
}

// resolveLearnerID prefers the anonymous cookie identity, then the payload,
// and mints a fresh id for first-time learners.
func (h *SessionsHandler) resolveLearnerID(c *gin.Context, fromPayload string) string {
	store := sessions.Default(c)
	if id, ok := store.Get("learnerID").(string); ok && id != "" {
		return id
	}

	id := fromPayload
	if id == "" {
		id = uuid.NewString()
	}

	store.Set("learnerID", id)
	if err := store.Save(); err != nil {
		h.log.Warn("Failed to persist learner cookie", zap.Error(err))
	}
	return id
}

func (h *SessionsHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("id")

	record, strokes, err := repository.GetSessionByID(sessionID)
	if err == repository.ErrSessionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if err != nil {
		h.log.Error("Failed to load session", zap.Error(err), zap.String("sessionID", sessionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": record,
		"strokes": strokes,
	})
}

func (h *SessionsHandler) ListLearnerSessions(c *gin.Context) {
	learnerID := c.Param("id")
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := repository.ListLearnerSessions(learnerID, limit)
	if err != nil {
		h.log.Error("Failed to list learner sessions", zap.Error(err), zap.String("learnerID", learnerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": records})
}

// ListLetters exposes the practiceable letter set with expected stroke
// counts, for clients building their own tracing canvas.
func (h *SessionsHandler) ListLetters(c *gin.Context) {
	type letterInfo struct {
		Char            string `json:"char"`
		ExpectedStrokes int    `json:"expectedStrokes"`
	}

	out := make([]letterInfo, 0, len(h.letters.Letters))
	for _, l := range h.letters.Letters {
		out = append(out, letterInfo{Char: l.Char, ExpectedStrokes: len(l.Strokes)})
	}
	c.JSON(http.StatusOK, gin.H{"letters": out})
}

func (h *SessionsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
