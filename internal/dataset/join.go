package dataset

import (
	"strings"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// JoinOmicsToOmics takes the selected columns of two omics tables and
// outer-joins them on the sample index after harmonizing the column
// index levels. A nil gene slice selects the whole table for that side.
func (d *Dataset) JoinOmicsToOmics(name1, name2 string, genes1, genes2 []string) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)

	selected1, err := d.selectOmics(name1, genes1, c)
	if err != nil {
		return nil, nil, err
	}
	selected2, err := d.selectOmics(name2, genes2, c)
	if err != nil {
		return nil, nil, err
	}

	joined, err := harmonizedOuterJoin(name1+"_and_"+name2, selected1, selected2)
	if err != nil {
		return nil, nil, err
	}
	d.warnInsertedMissing(c, name1, name2, selected1.Index(), selected2.Index())
	return joined, c.Warnings(), nil
}

// JoinMetadataToMetadata outer-joins selected columns of two metadata
// tables. Column labels present on both sides get the second side's
// copy suffixed _from_<name2>, since metadata tables may legitimately
// share labels such as Patient_ID.
func (d *Dataset) JoinMetadataToMetadata(name1, name2 string, cols1, cols2 []string) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)

	selected1, err := d.selectMetadata(name1, cols1)
	if err != nil {
		return nil, nil, err
	}
	selected2, err := d.selectMetadata(name2, cols2)
	if err != nil {
		return nil, nil, err
	}

	selected2 = suffixOverlapping(selected1, selected2, "_from_"+name2)

	joined, err := harmonizedOuterJoin(name1+"_and_"+name2, selected1, selected2)
	if err != nil {
		return nil, nil, err
	}
	d.warnInsertedMissing(c, name1, name2, selected1.Index(), selected2.Index())
	return joined, c.Warnings(), nil
}

// JoinMetadataToOmics outer-joins selected metadata columns with all or
// part of an omics table.
func (d *Dataset) JoinMetadataToOmics(metadataName, omicsName string, metadataCols, omicsGenes []string) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)

	metadataSelected, err := d.selectMetadata(metadataName, metadataCols)
	if err != nil {
		return nil, nil, err
	}
	omicsSelected, err := d.selectOmics(omicsName, omicsGenes, c)
	if err != nil {
		return nil, nil, err
	}

	joined, err := harmonizedOuterJoin(metadataName+"_and_"+omicsName, metadataSelected, omicsSelected)
	if err != nil {
		return nil, nil, err
	}
	d.warnInsertedMissing(c, metadataName, omicsName, metadataSelected.Index(), omicsSelected.Index())
	return joined, c.Warnings(), nil
}

// JoinOmicsToMutations aggregates all mutations for the requested
// genes and outer-joins them to all or part of an omics table, then
// back-fills wildtype sentinels for status-known samples with no
// mutation record.
func (d *Dataset) JoinOmicsToMutations(omicsName string, mutationGenes, omicsGenes []string, filter *mutation.Filter, showLocation bool) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)

	omics, err := d.selectOmics(omicsName, omicsGenes, c)
	if err != nil {
		return nil, nil, err
	}
	joined, err := d.joinOtherToMutations(omicsName, omics, mutationGenes, filter, showLocation, c)
	if err != nil {
		return nil, nil, err
	}
	return joined, c.Warnings(), nil
}

// JoinMetadataToMutations aggregates all mutations for the requested
// genes and outer-joins them to all or part of a metadata table, with
// the same wildtype back-fill as JoinOmicsToMutations.
func (d *Dataset) JoinMetadataToMutations(metadataName string, mutationGenes, metadataCols []string, filter *mutation.Filter, showLocation bool) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)

	metadata, err := d.selectMetadata(metadataName, metadataCols)
	if err != nil {
		return nil, nil, err
	}
	joined, err := d.joinOtherToMutations(metadataName, metadata, mutationGenes, filter, showLocation, c)
	if err != nil {
		return nil, nil, err
	}
	return joined, c.Warnings(), nil
}

// joinOtherToMutations is the shared second half of the two mutation
// joins: aggregate, harmonize, outer-join, append Sample_Status, then
// hand the result to the wildtype imputer.
func (d *Dataset) joinOtherToMutations(otherName string, other *table.Table, genes []string, filter *mutation.Filter, showLocation bool, c *warn.Collector) (*table.Table, error) {
	if len(genes) == 0 {
		return nil, newInvalidParameterErrorf("mutation joins require at least one gene")
	}

	mutations, err := mutation.Aggregate(d.mutations, genes, filter, d.prioritizer, c)
	if err != nil {
		return nil, err
	}

	joined, err := harmonizedOuterJoin(otherName+"_and_somatic_mutation", other, mutations)
	if err != nil {
		return nil, err
	}

	joined, err = d.appendSampleStatus(joined)
	if err != nil {
		return nil, err
	}

	joined, err = d.imputeWildtype(joined, filter != nil, showLocation, c)
	if err != nil {
		return nil, err
	}

	d.warnInsertedMissing(c, otherName, "somatic_mutation", other.Index(), mutations.Index())
	return joined, nil
}

// appendSampleStatus adds the Sample_Status column, padded with
// missing level values when the joined index is multi-level. Samples
// absent from the status map get a Missing cell.
func (d *Dataset) appendSampleStatus(joined *table.Table) (*table.Table, error) {
	values := make([]table.Value, joined.NumRows())
	for i, sample := range joined.Index() {
		if status, ok := d.status[sample]; ok {
			values[i] = table.String(string(status))
		} else {
			values[i] = table.Missing{}
		}
	}
	key := make(table.Key, joined.Columns().NumLevels())
	key[0] = SampleStatusColumn
	for i := 1; i < len(key); i++ {
		key[i] = table.NoLevelValue
	}
	return joined.AppendColumn(key, values)
}

// harmonizedOuterJoin aligns two tables' column index levels and
// outer-joins them. The result's row index is the sorted union.
func harmonizedOuterJoin(name string, left, right *table.Table) (*table.Table, error) {
	leftCols, rightCols := table.AlignLevels(left.Columns(), right.Columns())
	left, err := left.WithColumns(leftCols)
	if err != nil {
		return nil, err
	}
	right, err = right.WithColumns(rightCols)
	if err != nil {
		return nil, err
	}
	return table.OuterJoin(name, left, right)
}

// suffixOverlapping renames every column of right whose Name-level
// label also appears in left, appending suffix to the label.
func suffixOverlapping(left, right *table.Table, suffix string) *table.Table {
	leftNames := make(map[string]struct{})
	for _, name := range left.Columns().Names() {
		leftNames[name] = struct{}{}
	}
	rightCols := right.Columns()
	renamed := false
	for i, name := range rightCols.Names() {
		if _, clash := leftNames[name]; clash {
			rightCols = renameColumnName(rightCols, i, name+suffix)
			renamed = true
		}
	}
	if !renamed {
		return right
	}
	out, err := right.WithColumns(rightCols)
	if err != nil {
		return right // same key count; unreachable
	}
	return out
}

// renameColumnName replaces column i's Name-level value.
func renameColumnName(cols table.Columns, i int, name string) table.Columns {
	keys := make([]table.Key, cols.Len())
	for j := 0; j < cols.Len(); j++ {
		keys[j] = cols.Key(j)
	}
	nameLevel := 0 // Name is always the first level when present
	keys[i][nameLevel] = name
	out, err := table.NewColumns(cols.Levels(), keys...)
	if err != nil {
		return cols
	}
	return out
}

// warnInsertedMissing warns, once per side, about samples that an
// outer join filled with missing values because the other side had no
// row for them. The somatic_mutation side is skipped: those gaps get
// their own wildtype fill warnings.
func (d *Dataset) warnInsertedMissing(c *warn.Collector, name1, name2 string, index1, index2 []string) {
	unique1 := table.DifferenceIndex(index1, index2)
	unique2 := table.DifferenceIndex(index2, index1)
	d.issueInsertedMissing(c, unique1, name2)
	d.issueInsertedMissing(c, unique2, name1)
}

func (d *Dataset) issueInsertedMissing(c *warn.Collector, unique []string, otherName string) {
	if otherName == "somatic_mutation" || len(unique) == 0 {
		return
	}
	c.Addf(warn.CodeInsertedMissing,
		"%s data was not found for the following samples, so %s data columns were filled with missing values for these samples: %s",
		otherName, otherName, strings.Join(unique, ", "))
}
