package chunks

import "math"

// ChunkBuffer collects elements pulled from a source into groups of a fixed
// size. Elements that arrive before a group is complete are buffered in a
// slot array; filled counts how many leading slots currently hold a live
// value. Slots at and beyond filled always hold the zero value of T, so the
// counter alone decides which slots may be read or handed out.
//
// A buffer exclusively owns its source. Callers should arrange for Close to
// run on every exit path (typically with defer): Go has no scope-exit
// destructor, and Close is what releases the buffered prefix and the
// source's resources.
type ChunkBuffer[T any] struct {
	src    Source[T]
	slots  []T
	filled int
	closed bool
}

// NewChunkBuffer creates a buffer that groups the source's elements into
// slices of exactly size elements. size may be zero: a zero-size buffer
// produces empty groups forever without ever consulting the source. A
// negative size is a programmer error and panics.
func NewChunkBuffer[T any](src Source[T], size int) *ChunkBuffer[T] {
	if size < 0 {
		panic("chunkiter.NewChunkBuffer: negative size")
	}
	return &ChunkBuffer[T]{
		src:   src,
		slots: make([]T, size),
	}
}

// Size returns the fixed group size N.
func (b *ChunkBuffer[T]) Size() int {
	return len(b.slots)
}

// Next attempts to produce the next full group.
//
// It pulls elements one at a time, storing each into the next free slot,
// until size elements are buffered. It then returns them as a freshly
// allocated slice in pull order and empties the buffer in the same step.
//
// If the source reports exhaustion first, Next stops immediately and returns
// (nil, false); the elements pulled so far stay buffered and remain visible
// through Remainder. Calling Next again simply polls the source again:
// repeated calls after exhaustion keep returning (nil, false) unless the
// source starts producing, which is entirely the source's business. Elements
// consumed into a partial group are never replayed.
//
// A closed buffer never touches the source and always returns (nil, false).
func (b *ChunkBuffer[T]) Next() ([]T, bool) {
	if b.closed {
		return nil, false
	}
	size := len(b.slots)
	if size == 0 {
		return []T{}, true
	}
	for b.filled < size {
		v, ok := b.src.Next()
		if !ok {
			return nil, false
		}
		b.slots[b.filled] = v
		b.filled++
	}
	group := make([]T, size)
	copy(group, b.slots)
	clear(b.slots)
	b.filled = 0
	return group, true
}

// Remainder returns the buffered elements that have not yet formed a full
// group, in pull order. The returned slice aliases the buffer's internal
// storage: treat it as read-only and do not retain it across further
// operations on the buffer. It is empty when nothing is buffered.
func (b *ChunkBuffer[T]) Remainder() []T {
	return b.slots[:b.filled]
}

// SizeHint estimates how many more full groups Next can still produce, from
// the source's own remaining-element bounds adjusted for the elements
// already buffered. The lower bound saturates instead of overflowing; the
// upper bound is reported as unknown when the source's is unknown, when the
// source is not Sized, or when the adjustment would overflow. The estimate
// is advisory only.
func (b *ChunkBuffer[T]) SizeHint() (lower int, upper int, upperKnown bool) {
	if b.closed {
		return 0, 0, true
	}
	size := len(b.slots)
	if size == 0 {
		// A zero-size buffer produces empty groups unboundedly.
		return math.MaxInt, 0, false
	}
	var srcLower, srcUpper int
	var srcKnown bool
	if s, ok := b.src.(Sized); ok {
		srcLower, srcUpper, srcKnown = s.SizeHint()
	}
	// Saturate rather than wrap when adjusting for buffered elements.
	lowSum := math.MaxInt
	if srcLower <= math.MaxInt-b.filled {
		lowSum = srcLower + b.filled
	}
	lower = lowSum / size
	if srcKnown && srcUpper <= math.MaxInt-b.filled {
		return lower, (srcUpper + b.filled) / size, true
	}
	return lower, 0, false
}

// Clone duplicates the buffer. It requires the source to be [Cloneable];
// otherwise it returns (nil, false). The source is forked so the two buffers
// advance independently, and exactly the buffered prefix is copied: through
// dup when non-nil, by plain assignment otherwise (a deep copy for value
// types, a shallow one for pointer-bearing types). The clone's free slots
// start out genuinely zero regardless of the original's.
func (b *ChunkBuffer[T]) Clone(dup func(T) T) (*ChunkBuffer[T], bool) {
	c, ok := b.src.(Cloneable[T])
	if !ok || b.closed {
		return nil, false
	}
	nb := &ChunkBuffer[T]{
		src:    c.Clone(),
		slots:  make([]T, len(b.slots)),
		filled: b.filled,
	}
	for i := range b.filled {
		if dup != nil {
			nb.slots[i] = dup(b.slots[i])
		} else {
			nb.slots[i] = b.slots[i]
		}
	}
	return nb, true
}

// Err forwards the source's Err method if it has one. The buffer itself
// produces no errors: exhaustion is signalled through Next's second return
// value, and whatever the source reports here passes through untouched.
func (b *ChunkBuffer[T]) Err() error {
	if s, ok := b.src.(interface{ Err() error }); ok {
		return s.Err()
	}
	return nil
}

// Close releases the buffered prefix (each live slot is reset to the zero
// value so anything it referenced becomes collectable) and forwards to the
// source's Close if it has one. Safe at any fill level, including an empty
// buffer, and idempotent.
func (b *ChunkBuffer[T]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	clear(b.slots[:b.filled])
	b.filled = 0
	if c, ok := b.src.(interface{ Close() }); ok {
		c.Close()
	}
}
