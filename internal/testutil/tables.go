// Package testutil provides compact table constructors for tests.
package testutil

import (
	"testing"

	"github.com/PayneLab/cptac/internal/table"
)

// MustFlat builds a flat-indexed table, failing the test on error.
func MustFlat(t *testing.T, name string, samples, labels []string, cols ...[]table.Value) *table.Table {
	t.Helper()
	tbl, err := table.NewFlat(name, samples, labels, cols)
	if err != nil {
		t.Fatalf("building table %s: %v", name, err)
	}
	return tbl
}

// MustTable builds a multi-level table, failing the test on error.
func MustTable(t *testing.T, name string, samples []string, levels []string, keys []table.Key, cols ...[]table.Value) *table.Table {
	t.Helper()
	columns, err := table.NewColumns(levels, keys...)
	if err != nil {
		t.Fatalf("building columns for %s: %v", name, err)
	}
	tbl, err := table.New(name, samples, columns, cols)
	if err != nil {
		t.Fatalf("building table %s: %v", name, err)
	}
	return tbl
}

// Floats builds a column of Float cells.
func Floats(vals ...float64) []table.Value {
	out := make([]table.Value, len(vals))
	for i, v := range vals {
		out[i] = table.Float(v)
	}
	return out
}

// Strs builds a column of String cells.
func Strs(vals ...string) []table.Value {
	out := make([]table.Value, len(vals))
	for i, v := range vals {
		out[i] = table.String(v)
	}
	return out
}

// Cells builds a column from arbitrary values.
func Cells(vals ...table.Value) []table.Value {
	return vals
}
