package app

import (
	"dns-query-collector/internal/shared/metrics"
)

var (
	metricRunLastCompletion = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "last_completion_timestamp_seconds",
		},
	)

	// outcome is one of parsed, failed
	metricRunLines = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "lines",
		},
		[]string{"outcome"},
	)

	// outcome is one of sent, failed
	metricRunChunks = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "chunks",
		},
		[]string{"outcome"},
	)
)
