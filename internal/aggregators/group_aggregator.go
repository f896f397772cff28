package aggregators

import (
	"sort"

	"dns-query-collector/internal/models"
)

// KeyFunc selects the grouping key of a record.
type KeyFunc func(record *models.ParsedRecord) string

// ByClientIP groups records by the querying client address.
func ByClientIP(record *models.ParsedRecord) string { return record.ClientIP }

// ByName groups records by the queried name, exactly as logged.
func ByName(record *models.ParsedRecord) string { return record.Name }

// ByType groups records by the DNS record type token.
func ByType(record *models.ParsedRecord) string { return record.Type }

// Options tunes how ratios are displayed.
type Options struct {
	// ScalePercent multiplies ratios by 100. Off by default: the collector
	// report has always printed the raw ratio followed by "%".
	ScalePercent bool
}

// Aggregate groups records by keyFn and emits one GroupStat per distinct key,
// in ascending key order. Total is the number of hit records in the group and
// AvgPercent is Total over totalRecordCount. Keys compare by exact string equality.
func Aggregate(records []*models.ParsedRecord, keyFn KeyFunc, totalRecordCount int) []*models.GroupStat {
	return AggregateWithOptions(records, keyFn, totalRecordCount, Options{})
}

func AggregateWithOptions(records []*models.ParsedRecord, keyFn KeyFunc, totalRecordCount int, opts Options) []*models.GroupStat {
	hitsByKey := make(map[string]int)
	for _, record := range records {
		key := keyFn(record)
		if record.Hit {
			hitsByKey[key]++
		} else if _, seen := hitsByKey[key]; !seen {
			hitsByKey[key] = 0
		}
	}

	// Sort keys for deterministic ordering
	keys := make([]string, 0, len(hitsByKey))
	for key := range hitsByKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	stats := make([]*models.GroupStat, 0, len(keys))
	for _, key := range keys {
		hits := hitsByKey[key]
		stats = append(stats, &models.GroupStat{
			Key:        key,
			Total:      hits,
			AvgPercent: FormatRatio(hits, totalRecordCount, opts.ScalePercent),
		})
	}
	return stats
}
