package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tracekit/internal/database"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// timelineColumns whitelists the chartable summary columns. The map value is
// interpolated into SQL, so only names listed here are ever queried.
var timelineColumns = map[string]string{
	"mean_velocity":   "mean_velocity",
	"velocity_cov":    "velocity_cov",
	"peak_velocity":   "peak_velocity",
	"tremor_power":    "tremor_power",
	"reversal_count":  "reversal_count",
	"pause_count":     "pause_count",
	"order_score":     "order_score",
	"compactness":     "compactness",
	"dyslexia_risk":   "dyslexia_risk",
	"dysgraphia_risk": "dysgraphia_risk",
	"attention_risk":  "attention_risk",
}

// GetTimelineData returns one metric's value over time for a learner,
// optionally restricted to a single practiced letter.
func GetTimelineData(ctx context.Context, learnerID, letter, metricKey string) ([]TimelineDataPoint, error) {
	column, ok := timelineColumns[metricKey]
	if !ok {
		return nil, fmt.Errorf("unknown timeline metric %q", metricKey)
	}

	query := fmt.Sprintf(`
		SELECT created_at AS date, %s::float AS value
		FROM session_summaries
		WHERE learner_id = ? AND (? = '' OR letter = ?)
		ORDER BY created_at;
	`, column)

	var data []TimelineDataPoint
	err := database.DB.WithContext(ctx).Raw(query, learnerID, letter, letter).Scan(&data).Error
	return data, err
}

// MetricKeys lists the chartable metric names for the charts UI.
func MetricKeys() []string {
	keys := make([]string, 0, len(timelineColumns))
	for k := range timelineColumns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
