package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// TestImpute_FilteredFillsBareStrings tests that with a priority
// filter the fill is a bare string in every imputed column.
func TestImpute_FilteredFillsBareStrings(t *testing.T) {
	d := newTestDataset(t)

	joined, _, err := d.JoinMetadataToMutations("clinical",
		[]string{"TP53"}, []string{"Age"}, &mutation.Filter{}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"S001", "S002", "S003", "S004"}, joined.Index())

	mut := columnFor(t, joined, "TP53_Mutation")
	loc := columnFor(t, joined, "TP53_Location")
	status := columnFor(t, joined, "TP53_Mutation_Status")

	// S001 collapses to its truncating call.
	assert.Equal(t, table.String("Nonsense_Mutation"), joined.At(0, mut))
	assert.Equal(t, table.String("p.R306*"), joined.At(0, loc))
	assert.Equal(t, table.String(mutation.StatusMultiple), joined.At(0, status))

	// S002 is a known Normal, S003 a known Tumor.
	assert.Equal(t, table.String(WildtypeNormal), joined.At(1, mut))
	assert.Equal(t, table.String(NoMutation), joined.At(1, loc))
	assert.Equal(t, table.String(WildtypeNormal), joined.At(1, status))
	assert.Equal(t, table.String(WildtypeTumor), joined.At(2, mut))
	assert.Equal(t, table.String(NoMutation), joined.At(2, loc))

	// S004 has unknown status: never imputed.
	assert.True(t, table.IsMissing(joined.At(3, mut)))
	assert.True(t, table.IsMissing(joined.At(3, loc)))
	assert.True(t, table.IsMissing(joined.At(3, status)))
}

// TestImpute_NumericNeighborsDoubleNest tests the unfiltered fill shape
// when the joined table carries numeric columns: sentinels arrive as
// doubly-nested lists.
func TestImpute_NumericNeighborsDoubleNest(t *testing.T) {
	d := newTestDataset(t)

	joined, warnings, err := d.JoinMetadataToMutations("clinical",
		[]string{"TP53"}, []string{"Age"}, nil, true)
	require.NoError(t, err)

	mut := columnFor(t, joined, "TP53_Mutation")
	loc := columnFor(t, joined, "TP53_Location")

	assert.Equal(t, table.List{table.Strings(WildtypeNormal)}, joined.At(1, mut))
	assert.Equal(t, table.List{table.Strings(WildtypeTumor)}, joined.At(2, mut))
	assert.Equal(t, table.List{table.Strings(NoMutation)}, joined.At(1, loc))

	// The existing call keeps its flat list.
	assert.Equal(t, table.Strings("Missense_Mutation", "Nonsense_Mutation"), joined.At(0, mut))

	var filled []warn.Warning
	for _, w := range warnings {
		if w.Code == warn.CodeFilledWildtype {
			filled = append(filled, w)
		}
	}
	require.Len(t, filled, 1)
	assert.Contains(t, filled[0].Message, "2 samples for the TP53 gene")
}

// TestImpute_AllStringColumnsSingleNest tests the unfiltered fill shape
// when every joined column holds only strings and lists: sentinels
// arrive as one-element lists.
func TestImpute_AllStringColumnsSingleNest(t *testing.T) {
	d := newTestDataset(t)

	joined, _, err := d.JoinMetadataToMutations("derived_molecular",
		[]string{"TP53"}, nil, nil, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"S001", "S002"}, joined.Index())

	mut := columnFor(t, joined, "TP53_Mutation")
	status := columnFor(t, joined, "TP53_Mutation_Status")

	assert.Equal(t, table.Strings(WildtypeNormal), joined.At(1, mut))
	assert.Equal(t, table.Strings("Missense_Mutation", "Nonsense_Mutation"), joined.At(0, mut))

	// Status cells are single-valued, so the fill is a bare string
	// even without a filter.
	assert.Equal(t, table.String(WildtypeNormal), joined.At(1, status))
	assert.Equal(t, table.String(mutation.StatusMultiple), joined.At(0, status))
}

// TestImpute_HideLocationDropsColumn tests that showLocation=false
// removes every *_Location column from the result.
func TestImpute_HideLocationDropsColumn(t *testing.T) {
	d := newTestDataset(t)

	joined, _, err := d.JoinMetadataToMutations("clinical",
		[]string{"TP53"}, []string{"Age"}, &mutation.Filter{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Age", "TP53_Mutation", "TP53_Mutation_Status", SampleStatusColumn,
	}, joined.Columns().Names())
}

// TestImpute_SampleStatusColumn tests the appended Sample_Status
// column: known statuses verbatim, unknown samples missing.
func TestImpute_SampleStatusColumn(t *testing.T) {
	d := newTestDataset(t)

	joined, _, err := d.JoinMetadataToMutations("clinical",
		[]string{"TP53"}, []string{"Age"}, nil, true)
	require.NoError(t, err)

	status := columnFor(t, joined, SampleStatusColumn)
	assert.Equal(t, table.String("Tumor"), joined.At(0, status))
	assert.Equal(t, table.String("Normal"), joined.At(1, status))
	assert.Equal(t, table.String("Tumor"), joined.At(2, status))
	assert.True(t, table.IsMissing(joined.At(3, status)))
}

// TestImpute_OutOfRegistrySampleKeepsRecord tests that a mutation
// record for a sample outside the metadata table still lands in the
// joined result, untouched by imputation since its status is unknown.
func TestImpute_OutOfRegistrySampleKeepsRecord(t *testing.T) {
	d := newTestDataset(t)

	joined, _, err := d.JoinMetadataToMutations("derived_molecular",
		[]string{"KRAS"}, nil, nil, true)
	require.NoError(t, err)

	// S005 exists only in the mutation records.
	assert.Equal(t, []string{"S001", "S002", "S005"}, joined.Index())

	mut := columnFor(t, joined, "KRAS_Mutation")
	assert.Equal(t, table.Strings(WildtypeTumor), joined.At(0, mut))
	assert.Equal(t, table.Strings("Missense_Mutation"), joined.At(1, mut))
	assert.Equal(t, table.Strings("Silent"), joined.At(2, mut))

	// The metadata side stays missing for S005.
	pid := columnFor(t, joined, "Patient_ID")
	assert.True(t, table.IsMissing(joined.At(2, pid)))

	status := columnFor(t, joined, SampleStatusColumn)
	assert.True(t, table.IsMissing(joined.At(2, status)))
}
