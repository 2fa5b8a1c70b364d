package chunks

import (
	"iter"
	"slices"
)

// Exact splits the input sequence into groups of exactly the given size,
// discarding any trailing elements that do not fill a final group. Unlike
// [ChunkBuffer], which permits a zero size, this combinator follows the
// usual convention for seq adapters and yields nothing when size <= 0.
// Use [ExactTail] to observe the discarded tail.
func Exact[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		buf := NewChunkBuffer(FromSeq(seq), size)
		defer buf.Close()

		for {
			group, ok := buf.Next()
			if !ok {
				return
			}
			if !yield(group) {
				return
			}
		}
	}
}

// ExactTail is Exact with a way to observe the leftover elements. When the
// input is exhausted and the final partial group is discarded, tail is
// called once with a copy of those elements (possibly empty). tail is not
// called if the consumer stops the iteration early.
func ExactTail[T any](seq iter.Seq[T], size int, tail func([]T)) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		buf := NewChunkBuffer(FromSeq(seq), size)
		defer buf.Close()

		for {
			group, ok := buf.Next()
			if !ok {
				tail(slices.Clone(buf.Remainder()))
				return
			}
			if !yield(group) {
				return
			}
		}
	}
}
