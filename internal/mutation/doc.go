// Package mutation turns raw per-record mutation calls into per-sample
// table columns.
//
// The Aggregator groups records by sample and gene, building either
// list-valued cells (no priority filter) or single-valued cells chosen
// by the Prioritizer's deterministic tie-break. Which mutation types
// count as truncating, missense, or noncoding is data, not code: the
// ClassConfig maps cancer types to ordered label sets and is validated
// against a CUE schema, so adding a cancer type is a configuration
// change.
package mutation
