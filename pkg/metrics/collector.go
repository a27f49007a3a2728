package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
)

// collectTimeout bounds the database read a scrape triggers.
const collectTimeout = 5 * time.Second

// QueueDepthCollector reports tasks by status straight from the database at
// scrape time, so the gauge never drifts from the queue's actual state.
type QueueDepthCollector struct {
	db    *ent.Client
	tasks *prometheus.Desc
}

// NewQueueDepthCollector creates a collector over the given client.
func NewQueueDepthCollector(db *ent.Client) *QueueDepthCollector {
	return &QueueDepthCollector{
		db: db,
		tasks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "tasks"),
			"Tasks currently in the queue, by status.",
			[]string{"status"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *QueueDepthCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tasks
}

// Collect implements prometheus.Collector.
func (c *QueueDepthCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := c.db.Task.Query().
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.tasks, fmt.Errorf("count tasks by status: %w", err))
		return
	}

	for _, row := range rows {
		ch <- prometheus.MustNewConstMetric(c.tasks, prometheus.GaugeValue, float64(row.Count), row.Status)
	}
}
