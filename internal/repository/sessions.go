package repository

import (
	"errors"

	"tracekit/internal/database"
	"tracekit/internal/models"

	"gorm.io/gorm"
)

// ErrSessionNotFound is returned when a session id has no stored summary.
var ErrSessionNotFound = errors.New("session not found")

// SaveSessionSummaryTx persists the session summary and all per-stroke rows
// in a single transaction. A duplicate session id fails the whole save.
func SaveSessionSummaryTx(summary models.SessionSummary) error {
	record, strokes, err := models.NewSessionSummaryRecord(summary)
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if len(strokes) == 0 {
			return nil
		}
		return tx.Create(&strokes).Error
	})
}

// GetSessionByID loads a stored summary together with its stroke rows.
func GetSessionByID(sessionID string) (*models.SessionSummaryRecord, []models.StrokeFeatureRecord, error) {
	var record models.SessionSummaryRecord
	err := database.DB.Where("session_id = ?", sessionID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var strokes []models.StrokeFeatureRecord
	err = database.DB.
		Where("session_id = ?", sessionID).
		Order("stroke_index ASC").
		Find(&strokes).Error
	if err != nil {
		return nil, nil, err
	}

	return &record, strokes, nil
}

// ListLearnerSessions returns a learner's summaries, newest first.
func ListLearnerSessions(learnerID string, limit int) ([]models.SessionSummaryRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var records []models.SessionSummaryRecord
	err := database.DB.
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// DeleteSessionsOlderThan prunes summaries and their stroke rows past the
// retention window. Returns the number of summaries removed.
func DeleteSessionsOlderThan(days int) (int64, error) {
	var deleted int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&models.SessionSummaryRecord{}).
			Select("session_id").
			Where("created_at < NOW() - make_interval(days => ?)", days)

		if err := tx.Where("session_id IN (?)", subquery).
			Delete(&models.StrokeFeatureRecord{}).Error; err != nil {
			return err
		}

		result := tx.Where("created_at < NOW() - make_interval(days => ?)", days).
			Delete(&models.SessionSummaryRecord{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}
