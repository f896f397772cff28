package models

// ParseFailure describes a log line that could not be turned into a ParsedRecord.
type ParseFailure struct {
	LineNumber int    `json:"lineNumber"` // 1-based
	Line       string `json:"line"`       // without trailing newline
	Code       string `json:"code"`
	Message    string `json:"message"`
}
