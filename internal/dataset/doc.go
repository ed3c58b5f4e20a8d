// Package dataset is the join/reindex core: a read-only registry of
// named tables plus the five join operations over them.
//
// The registry is populated once, before any core call, by an
// out-of-scope loader. Every accessor returns an independent copy
// before any join or selection logic runs, so callers may mutate their
// results freely and concurrent readers never observe each other's
// derived tables. All operations are synchronous pure transforms: no
// locking, no I/O, no cancellation.
//
// Validation failures abort a call with a typed error and no partial
// result. Recoverable gaps - a requested column with no match, rows
// inserted by an outer join, wildtype back-fills - are batched into
// per-call warnings instead.
package dataset
