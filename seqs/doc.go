/*
Package seqs provides a small set of helpers for Go 1.23+ iterators
(iter.Seq): generation ([Range], [Repeat]), transformation ([Map], [Filter],
[Take]) and collection ([First], [Count]).

It exists to feed and drain the grouping adapters in package chunks; for
anything beyond that, prefer the standard library's slices and maps iterator
helpers.
*/
package seqs
