package parsers

import (
	"dns-query-collector/internal/shared/metrics"
)

var (
	metricLineParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParser,
			Name:      "line_parsed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricUnknownTypeTotal counts records whose type token is not a registered DNS RR type.
	// Such records are still accepted.
	metricUnknownTypeTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParser,
			Name:      "unknown_type_total",
		},
	)
)
