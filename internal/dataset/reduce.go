package dataset

import (
	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// ReduceMultiindex drops levels from and/or flattens the column index
// of a table, typically one returned by a join. A drop that leaves
// duplicate column headers behind produces a warning, as does a
// flatten request on an index that was already flat.
func (d *Dataset) ReduceMultiindex(t *table.Table, levelsToDrop []string, flatten bool, sep string) (*table.Table, []warn.Warning, error) {
	c := warn.NewCollector(d.logger)
	out := t

	if len(levelsToDrop) > 0 {
		reduced, duplicated, err := out.DropLevels(levelsToDrop)
		if err != nil {
			return nil, nil, err
		}
		if duplicated > 0 {
			c.Addf(warn.CodeDuplicateHeaders,
				"due to dropping the specified levels, the table now has %d duplicated column headers", duplicated)
		}
		out = reduced
	}

	if flatten {
		if sep == "" {
			sep = "_"
		}
		flattened, changed := out.Flatten(sep)
		if !changed {
			c.Addf(warn.CodeFlattenFlatIndex,
				"the column index did not have multiple levels, so nothing was flattened")
		}
		out = flattened
	}

	if out == t {
		out = t.Copy()
	}
	return out, c.Warnings(), nil
}
