// Package batch splits record lists into request-sized chunks.
package batch

import (
	"iter"

	"stock-sync/core/syncerr"
)

// Chunk returns a lazy sequence of contiguous sub-slices of items, each holding
// size elements except possibly the last. An empty input yields no chunks.
// The chunks share the backing array of items but are capped, so appending
// to one never overwrites its neighbour.
func Chunk[T any](items []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, syncerr.InvalidArgument("chunk", "chunk size must be positive, got %d", size)
	}

	return func(yield func([]T) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end:end]) {
				return
			}
		}
	}, nil
}

// Count returns how many chunks Chunk would produce for n items.
func Count(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
