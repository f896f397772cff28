package ingestors

import (
	"dns-query-collector/internal/shared/metrics"
)

var (
	metricLineParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "line_parsed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
