package batchers

// DefaultChunkSize is the number of records submitted per collector request.
const DefaultChunkSize = 500

// Partition splits items into contiguous chunks of at most chunkSize elements,
// preserving order. Only the last chunk may be shorter. Empty input yields no chunks.
// A chunkSize below 1 falls back to DefaultChunkSize.
//
// Chunks share the backing array of items but are capacity-capped, so appending
// to one chunk never overwrites the next.
func Partition[T any](items []T, chunkSize int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	chunks := make([][]T, 0, (len(items)+chunkSize-1)/chunkSize)
	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}
