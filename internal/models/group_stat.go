package models

// GroupStat is the hit statistic of one distinct grouping key (client IP, host name, ...).
type GroupStat struct {
	Key        string `json:"key"`
	Total      int    `json:"total"`      // hit records sharing Key
	AvgPercent string `json:"avgPercent"` // hit ratio over every line of the file, e.g. "0.3%"
}
