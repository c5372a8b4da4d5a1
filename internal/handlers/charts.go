package handlers

import (
	"net/http"
	"strings"

	"tracekit/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

// Timeline renders a learner's progress on one metric as a standalone
// chart page. Query params: learner (required), metric, letter.
func (h *ChartsHandler) Timeline(c *gin.Context) {
	learnerID := c.Query("learner")
	if learnerID == "" {
		c.String(http.StatusBadRequest, "learner query parameter is required")
		return
	}

	metricKey := c.DefaultQuery("metric", "mean_velocity")
	letter := c.Query("letter")

	data, err := repository.GetTimelineData(c, learnerID, letter, metricKey)
	if err != nil {
		h.log.Error("Failed to get timeline data",
			zap.Error(err),
			zap.String("learnerID", learnerID),
			zap.String("metricKey", metricKey))
		c.String(http.StatusBadRequest, "Failed to load timeline data")
		return
	}

	metricLabel := strings.Title(strings.ReplaceAll(metricKey, "_", " "))
	line := generateTimelineChart(data, metricLabel, letter)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render timeline chart", zap.Error(err))
	}
}

// Metrics lists the metric keys accepted by the timeline endpoint.
func (h *ChartsHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": repository.MetricKeys()})
}

func generateTimelineChart(data []repository.TimelineDataPoint, metricLabel, letter string) *charts.Line {
	subtitle := metricLabel
	if letter != "" {
		subtitle += " for letter " + letter
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Progress Over Time",
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0)
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}

	line.AddSeries(metricLabel, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
