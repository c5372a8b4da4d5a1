package services

import (
	"time"

	"tracekit/internal/config"
	"tracekit/internal/repository"

	"go.uber.org/zap"
)

// Retention prunes stored session data past the configured age. Child
// handwriting data should not accumulate indefinitely.
type Retention struct {
	log *zap.Logger
}

func NewRetention(log *zap.Logger) *Retention {
	return &Retention{log: log}
}

// Start runs the sweeper in a goroutine. A zero or negative retention
// window disables pruning entirely.
func (r *Retention) Start() {
	days := config.Conf.Retention.Days
	if days <= 0 {
		r.log.Info("Session retention disabled")
		return
	}

	interval := time.Duration(config.Conf.Retention.SweepMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	r.log.Info("Starting retention sweeper",
		zap.Int("retention_days", days),
		zap.Duration("interval", interval))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			<-ticker.C
			r.sweep(days)
		}
	}()
}

func (r *Retention) sweep(days int) {
	deleted, err := repository.DeleteSessionsOlderThan(days)
	if err != nil {
		r.log.Error("Retention sweep failed", zap.Error(err))
		return
	}
	if deleted > 0 {
		r.log.Info("Retention sweep removed sessions", zap.Int64("count", deleted))
	}
}
