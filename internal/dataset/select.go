package dataset

import (
	"strings"

	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// OmicsColumns selects columns from an omics table by gene. A nil
// genes slice selects the whole table. Either way, every Name-level
// label comes back suffixed with _<table_name>, preserving provenance
// across later joins.
//
// Lookup is lenient: a requested gene with no matching column is
// synthesized as a single all-missing column, and one warning names
// every such gene. The result has exactly one column block per
// requested gene, deduplicated, in request order.
func (d *Dataset) OmicsColumns(name string, genes []string) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)
	t, err := d.selectOmics(name, genes, c)
	if err != nil {
		return nil, nil, err
	}
	return t, c.Warnings(), nil
}

// Phosphosites selects all phosphosites of the specified genes from
// the phosphoproteomics table.
func (d *Dataset) Phosphosites(genes []string) (*table.Table, []warn.Warning, error) {
	return d.OmicsColumns("phosphoproteomics", genes)
}

// MetadataColumns selects columns from a metadata table. A nil cols
// slice selects the whole table, unsuffixed. Lookup is strict: any
// unmatched column is a hard InvalidColumnError naming every miss.
func (d *Dataset) MetadataColumns(name string, cols []string) (*table.Table, []warn.Warning, error) {
	t, err := d.selectMetadata(name, cols)
	if err != nil {
		return nil, nil, err
	}
	return t, nil, nil
}

// selectOmics implements OmicsColumns against a shared collector.
func (d *Dataset) selectOmics(name string, genes []string, c *warn.Collector) (*table.Table, error) {
	if err := d.checkValid(name, CategoryOmics); err != nil {
		return nil, err
	}
	t, err := d.Table(name)
	if err != nil {
		return nil, err
	}

	if genes == nil {
		return t.WithColumns(t.Columns().WithNameSuffix("_" + name))
	}

	genes = dedupePreservingOrder(table.CanonicalIDs(genes))
	cols := t.Columns()
	levels := cols.Levels()

	var (
		outKeys []table.Key
		outData [][]table.Value
		missing []string
	)
	for _, gene := range genes {
		positions := cols.IndicesForName(gene)
		if len(positions) == 0 {
			// Synthesize an all-missing column so the result still has
			// one block per requested gene.
			missing = append(missing, gene)
			key := make(table.Key, len(levels))
			key[0] = gene // Name is always the first level
			for i := 1; i < len(key); i++ {
				key[i] = table.NoLevelValue
			}
			blank := make([]table.Value, t.NumRows())
			for i := range blank {
				blank[i] = table.Missing{}
			}
			outKeys = append(outKeys, key)
			outData = append(outData, blank)
			continue
		}
		for _, p := range positions {
			outKeys = append(outKeys, cols.Key(p))
			outData = append(outData, t.ColumnValues(p))
		}
	}

	if len(missing) > 0 {
		c.Addf(warn.CodeMissingColumns,
			"the following columns were not found in the %s table, so they were inserted into the joined table but filled with missing values: %s",
			name, strings.Join(missing, ", "))
	}

	outCols, err := table.NewColumns(levels, outKeys...)
	if err != nil {
		return nil, err
	}
	selected, err := table.New(name, t.Index(), outCols, outData)
	if err != nil {
		return nil, err
	}
	return selected.WithColumns(selected.Columns().WithNameSuffix("_" + name))
}

// selectMetadata implements MetadataColumns.
func (d *Dataset) selectMetadata(name string, cols []string) (*table.Table, error) {
	if err := d.checkValid(name, CategoryMetadata); err != nil {
		return nil, err
	}
	t, err := d.Table(name)
	if err != nil {
		return nil, err
	}

	if cols == nil {
		return t, nil
	}

	cols = dedupePreservingOrder(table.CanonicalIDs(cols))
	index := t.Columns()

	var (
		positions []int
		notFound  []string
	)
	for _, col := range cols {
		matched := index.IndicesForName(col)
		if len(matched) == 0 {
			notFound = append(notFound, col)
			continue
		}
		positions = append(positions, matched...)
	}
	if len(notFound) > 0 {
		return nil, &InvalidColumnError{Table: name, Columns: notFound}
	}
	return t.Select(positions), nil
}

// dedupePreservingOrder removes duplicates keeping first occurrences.
func dedupePreservingOrder(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
