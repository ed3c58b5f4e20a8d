package mutation

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

func testRecords() []Record {
	return []Record{
		{Sample: "S001", Gene: "TP53", Mutation: "Missense_Mutation", Location: "p.R273H"},
		{Sample: "S001", Gene: "TP53", Mutation: "Nonsense_Mutation", Location: "p.R306*"},
		{Sample: "S002", Gene: "TP53", Mutation: "Silent", Location: "p.P36P"},
		{Sample: "S003", Gene: "KRAS", Mutation: "Missense_Mutation", Location: "p.G12D"},
	}
}

func testCollector() *warn.Collector {
	return warn.NewCollector(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func columnIndex(t *testing.T, tbl *table.Table, name string) int {
	t.Helper()
	positions := tbl.Columns().IndicesForName(name)
	require.Len(t, positions, 1, "column %s", name)
	return positions[0]
}

// TestAggregate_UnfilteredKeepsLists tests that a nil filter produces
// list cells holding every call, with Single/Multiple status.
func TestAggregate_UnfilteredKeepsLists(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	tbl, err := Aggregate(testRecords(), []string{"TP53"}, nil, p, testCollector())
	require.NoError(t, err)

	assert.Equal(t, []string{"S001", "S002"}, tbl.Index())
	assert.Equal(t, []string{"TP53_Mutation", "TP53_Location", "TP53_Mutation_Status"}, tbl.Columns().Names())

	mutCol := columnIndex(t, tbl, "TP53_Mutation")
	locCol := columnIndex(t, tbl, "TP53_Location")
	statusCol := columnIndex(t, tbl, "TP53_Mutation_Status")

	assert.Equal(t, table.Strings("Missense_Mutation", "Nonsense_Mutation"), tbl.At(0, mutCol))
	assert.Equal(t, table.Strings("p.R273H", "p.R306*"), tbl.At(0, locCol))
	assert.Equal(t, table.String(StatusMultiple), tbl.At(0, statusCol))

	assert.Equal(t, table.Strings("Silent"), tbl.At(1, mutCol))
	assert.Equal(t, table.String(StatusSingle), tbl.At(1, statusCol))
}

// TestAggregate_FilteredCollapses tests that a filter collapses each
// cell to one bare string by the class hierarchy.
func TestAggregate_FilteredCollapses(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	tbl, err := Aggregate(testRecords(), []string{"TP53"}, &Filter{}, p, testCollector())
	require.NoError(t, err)

	mutCol := columnIndex(t, tbl, "TP53_Mutation")
	locCol := columnIndex(t, tbl, "TP53_Location")

	// Nonsense is truncating, so it beats missense for S001.
	assert.Equal(t, table.String("Nonsense_Mutation"), tbl.At(0, mutCol))
	assert.Equal(t, table.String("p.R306*"), tbl.At(0, locCol))
	assert.Equal(t, table.String("Silent"), tbl.At(1, mutCol))
}

// TestAggregate_MissingLocationCell tests that a record without a
// location yields a missing location cell.
func TestAggregate_MissingLocationCell(t *testing.T) {
	p := newTestPrioritizer(t, "brca")
	records := []Record{
		{Sample: "S001", Gene: "TP53", Mutation: "Splice_Site", Location: NoLocation},
	}

	tbl, err := Aggregate(records, []string{"TP53"}, &Filter{}, p, testCollector())
	require.NoError(t, err)

	locCol := columnIndex(t, tbl, "TP53_Location")
	assert.True(t, table.IsMissing(tbl.At(0, locCol)))
}

// TestAggregate_MultiGeneUnionIndex tests that the result covers the
// union of each requested gene's samples, with missing cells where a
// sample has no record for a gene.
func TestAggregate_MultiGeneUnionIndex(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	tbl, err := Aggregate(testRecords(), []string{"TP53", "KRAS"}, nil, p, testCollector())
	require.NoError(t, err)

	assert.Equal(t, []string{"S001", "S002", "S003"}, tbl.Index())
	assert.Equal(t, 6, tbl.NumCols())

	krasMut := columnIndex(t, tbl, "KRAS_Mutation")
	assert.True(t, table.IsMissing(tbl.At(0, krasMut)))
	assert.Equal(t, table.Strings("Missense_Mutation"), tbl.At(2, krasMut))

	tp53Mut := columnIndex(t, tbl, "TP53_Mutation")
	assert.True(t, table.IsMissing(tbl.At(2, tp53Mut)))
}

// TestAggregate_DeduplicatesGenes tests that repeating a gene in the
// request does not duplicate its columns.
func TestAggregate_DeduplicatesGenes(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	tbl, err := Aggregate(testRecords(), []string{"TP53", "TP53"}, nil, p, testCollector())
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumCols())
}

// TestAggregate_InvalidGene tests the hard error for a gene with zero
// records anywhere.
func TestAggregate_InvalidGene(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	_, err := Aggregate(testRecords(), []string{"TP53", "NOTAGENE"}, nil, p, testCollector())
	require.Error(t, err)
	assert.True(t, IsInvalidGene(err))
	assert.Contains(t, err.Error(), "NOTAGENE")
}

// TestAggregate_InvalidFilterToken tests the hard error for a filter
// token that exists nowhere in the mutation data.
func TestAggregate_InvalidFilterToken(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	_, err := Aggregate(testRecords(), []string{"TP53"},
		&Filter{Priority: []string{"Bogus_Mutation"}}, p, testCollector())
	require.Error(t, err)
	assert.True(t, IsInvalidFilter(err))
	assert.Contains(t, err.Error(), "Bogus_Mutation")
}

// TestAggregate_FilterValueAbsentWarning tests the batched warning for
// a token that exists for one gene but not another.
func TestAggregate_FilterValueAbsentWarning(t *testing.T) {
	p := newTestPrioritizer(t, "brca")
	c := testCollector()

	// Nonsense_Mutation exists only for TP53.
	_, err := Aggregate(testRecords(), []string{"TP53", "KRAS"},
		&Filter{Priority: []string{"Nonsense_Mutation"}}, p, c)
	require.NoError(t, err)

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, warn.CodeFilterValueAbsent, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "Nonsense_Mutation for the KRAS gene")
}

// TestAggregate_UnknownTypeWarning tests the batched warning for
// mutation types outside every configured class.
func TestAggregate_UnknownTypeWarning(t *testing.T) {
	p := newTestPrioritizer(t, "brca")
	c := testCollector()
	records := []Record{
		{Sample: "S001", Gene: "TP53", Mutation: "Exotic_Event", Location: "p.1"},
		{Sample: "S001", Gene: "TP53", Mutation: "Silent", Location: "p.2"},
	}

	tbl, err := Aggregate(records, []string{"TP53"}, &Filter{}, p, c)
	require.NoError(t, err)

	mutCol := columnIndex(t, tbl, "TP53_Mutation")
	assert.Equal(t, table.String("Exotic_Event"), tbl.At(0, mutCol))

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, warn.CodeUnknownMutationType, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "Exotic_Event")
}
