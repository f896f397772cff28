package sinks

import (
	"dns-query-collector/internal/shared/metrics"
)

var (
	metricChunkSentTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "chunk_sent_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricChunkSendDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "chunk_send_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
