package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/PayneLab/cptac/internal/table"
)

// AssertGolden compares a table's rendered TSV form against the golden
// file testdata/golden/<name>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, tbl *table.Table) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(tbl.RenderTSV()))
}
