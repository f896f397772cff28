package models

import "time"

// ChunkResult is the outcome of submitting one chunk of records to the collector.
type ChunkResult struct {
	Index      int
	Records    int
	StatusCode int // 0 when no response was received
	Duration   time.Duration
	Err        error
}

func (r *ChunkResult) Succeeded() bool {
	return r.Err == nil
}
