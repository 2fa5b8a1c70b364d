/*
Package chunks groups the elements of a pull-based source into fixed-size
slices without requiring the element type to have a usable zero or sentinel
value for padding.

The central type is [ChunkBuffer], a stateful adapter that owns a source and
a fixed number of slots:

  - **Advancing**: [ChunkBuffer.Next] pulls from the source until a full group
    of exactly size elements is collected, then hands it out as a fresh slice.
  - **Remainder**: when the source runs dry mid-group, the buffered prefix
    stays live and is inspectable via [ChunkBuffer.Remainder].
  - **Duplication**: [ChunkBuffer.Clone] forks the buffer when the source
    supports it, copying only the live prefix.
  - **Release**: [ChunkBuffer.Close] drops the live prefix so the garbage
    collector can reclaim whatever it referenced.

Sources are anything implementing [Source]; adapters are provided for slices
([FromSlice]), iterators ([FromSeq], [FromSeq2]) and plain functions
([FromFunc]). Optional capabilities ([Sized], [Cloneable], Close, Err) are
discovered by interface assertion, so a minimal source stays a one-method
type.

For pipeline-style code, [Exact] and [ExactTail] expose the same grouping as
iter.Seq combinators.

# Concurrency

Everything here is single-threaded and synchronous. A buffer exclusively owns
its source and its slots; two buffers never share state, so no locking exists
at this layer. If the source blocks, Next blocks for exactly as long, once
per element.
*/
package chunks
