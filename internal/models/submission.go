package models

import (
	"encoding/json"
	"time"
)

// Submission is one chunk of query records accepted by the local collector.
type Submission struct {
	SubmissionID string                       `json:"submissionId"`
	CollectorID  string                       `json:"collectorId"`
	ReceivedAt   time.Time                    `json:"receivedAt"`
	Client       string                       `json:"client"` // user agent family of the submitter
	Records      []map[string]json.RawMessage `json:"records"`
}
