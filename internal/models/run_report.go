package models

// RunReport gathers everything printed at the end of a run.
type RunReport struct {
	RunID         string
	TotalRecords  int // lines read from the file
	ParsedRecords int
	ParseFailures int
	SinkEnabled   bool
	Chunks        []*ChunkResult
	ClientRank    []*GroupStat
	HostRank      []*GroupStat
	TypeRank      []*GroupStat
}

// FailedChunks counts chunks whose submission did not succeed.
func (r *RunReport) FailedChunks() int {
	failed := 0
	for _, chunk := range r.Chunks {
		if !chunk.Succeeded() {
			failed++
		}
	}
	return failed
}
