package chunks

import "iter"

// Source is the pull side of a lazy sequence: each call to Next either
// produces the next element or reports exhaustion. Exhaustion is a normal
// terminal condition, not a failure, and a source is free to start producing
// again afterwards (the buffer re-polls on every advance).
//
// Sources may additionally implement any of the following, discovered by
// interface assertion:
//
//   - [Sized] to contribute remaining-element bounds to size estimates.
//   - [Cloneable] to allow the owning buffer to be duplicated.
//   - Close() to release underlying resources (forwarded by
//     [ChunkBuffer.Close]).
//   - Err() error to surface an out-of-band failure after exhaustion
//     (forwarded, never interpreted, by [ChunkBuffer.Err]).
type Source[T any] interface {
	Next() (T, bool)
}

// Sized reports bounds on the number of elements a source can still produce.
// upperKnown is false when no finite upper bound is known. The bounds are
// advisory: consumers may use them for sizing hints but must not rely on
// them for correctness.
type Sized interface {
	SizeHint() (lower int, upper int, upperKnown bool)
}

// Cloneable is implemented by sources that can be duplicated. The duplicate
// is positioned at the same point as the original and advances independently
// from then on.
type Cloneable[T any] interface {
	Clone() Source[T]
}

// -------------------------------------------------------
// Slice adapter
// -------------------------------------------------------

// SliceSource adapts a slice to the Source interface. It is sized and
// cloneable; the slice itself is shared, only the read position is owned.
type SliceSource[T any] struct {
	data []T
	pos  int
}

// FromSlice creates a Source reading the given slice front to back.
func FromSlice[T any](data []T) *SliceSource[T] {
	return &SliceSource[T]{data: data}
}

func (s *SliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.data) {
		var zero T
		return zero, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

// SizeHint reports the exact number of unread elements.
func (s *SliceSource[T]) SizeHint() (int, int, bool) {
	remaining := len(s.data) - s.pos
	return remaining, remaining, true
}

// Clone returns an independent source at the same read position.
func (s *SliceSource[T]) Clone() Source[T] {
	return &SliceSource[T]{data: s.data, pos: s.pos}
}

// -------------------------------------------------------
// Iterator adapters
// -------------------------------------------------------

// SeqSource adapts a standard Go iterator (iter.Seq) to the Source
// interface via iter.Pull. It is neither sized nor cloneable.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates a Source pulling from the iterator sequence. Close must be
// reachable on every exit path (normally via the owning buffer's Close), or
// the iterator's coroutine leaks until the source is collected.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

// Close stops the underlying iterator. Subsequent Next calls report
// exhaustion.
func (s *SeqSource[T]) Close() {
	s.stop()
}

// Seq2Source adapts an iter.Seq2[T, error] to the Source interface. The
// first non-nil error terminates the sequence; it is retained verbatim and
// reported by Err, never wrapped or inspected.
type Seq2Source[T any] struct {
	next func() (T, error, bool)
	stop func()
	err  error
}

// FromSeq2 creates a Source pulling from a (value, error) iterator sequence.
func FromSeq2[T any](seq iter.Seq2[T, error]) *Seq2Source[T] {
	next, stop := iter.Pull2(seq)
	return &Seq2Source[T]{next: next, stop: stop}
}

func (s *Seq2Source[T]) Next() (T, bool) {
	if s.err != nil {
		var zero T
		return zero, false
	}
	v, err, ok := s.next()
	if !ok {
		var zero T
		return zero, false
	}
	if err != nil {
		s.err = err
		s.stop()
		var zero T
		return zero, false
	}
	return v, true
}

// Err returns the error that terminated the sequence, if any.
func (s *Seq2Source[T]) Err() error {
	return s.err
}

// Close stops the underlying iterator.
func (s *Seq2Source[T]) Close() {
	s.stop()
}

// -------------------------------------------------------
// Function adapter
// -------------------------------------------------------

// FuncSource adapts a plain pull function to the Source interface.
type FuncSource[T any] func() (T, bool)

// FromFunc creates a Source from a pull function. The function is called
// once per element; returning false signals exhaustion.
func FromFunc[T any](next func() (T, bool)) FuncSource[T] {
	return FuncSource[T](next)
}

func (f FuncSource[T]) Next() (T, bool) {
	return f()
}
