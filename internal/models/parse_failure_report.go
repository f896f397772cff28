package models

// ParseFailureReport is the persisted list of lines rejected during one run.
type ParseFailureReport struct {
	RunID    string          `json:"runId"`
	Failures []*ParseFailure `json:"failures"`
}
