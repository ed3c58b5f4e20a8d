package dataset

import (
	"fmt"
	"strings"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// imputeWildtype fills absent mutation calls in an outer-joined
// (other x mutations) table. Samples with a known Tumor/Normal status
// get status-specific sentinels in *_Mutation and *_Mutation_Status
// columns; *_Location columns are either filled with No_mutation or
// dropped, per showLocation. Samples absent from the status map are
// left untouched: unknown status cannot assert wildtype.
//
// The fill shape is detected per join call, never assumed globally:
// a bare string when the aggregation ran with a filter; a one-element
// list when every column of the joined table holds only strings and
// lists; a doubly-nested list otherwise - that is, when the table
// carries numeric cells, or a column with no surviving cells at all.
func (d *Dataset) imputeWildtype(joined *table.Table, filtered bool, showLocation bool, c *warn.Collector) (*table.Table, error) {
	cols := joined.Columns()
	index := joined.Index()
	single := allColumnsObjectish(joined)

	fill := func(sentinel string) table.Value {
		switch {
		case filtered:
			return table.String(sentinel)
		case single:
			return table.List{table.String(sentinel)}
		default:
			return table.List{table.List{table.String(sentinel)}}
		}
	}

	var (
		outKeys []table.Key
		outData [][]table.Value
		fillLog []string
	)
	for i := 0; i < cols.Len(); i++ {
		name := cols.Name(i)
		values := joined.ColumnValues(i)

		switch {
		case strings.HasSuffix(name, mutation.MutationSuffix):
			filled := 0
			for r, sample := range index {
				status, known := d.status[sample]
				if !known || !table.IsMissing(values[r]) {
					continue
				}
				values[r] = fill(wildtypeSentinel(status))
				filled++
			}
			if filled > 0 {
				gene := strings.TrimSuffix(name, mutation.MutationSuffix)
				fillLog = append(fillLog, fmt.Sprintf("%d samples for the %s gene", filled, gene))
			}

		case strings.HasSuffix(name, mutation.MutationStatusSuffix):
			// Status cells are single-valued regardless of filtering,
			// so the fill is always a bare string.
			for r, sample := range index {
				if status, known := d.status[sample]; known && table.IsMissing(values[r]) {
					values[r] = table.String(wildtypeSentinel(status))
				}
			}

		case strings.HasSuffix(name, mutation.LocationSuffix):
			if !showLocation {
				continue // drop the column
			}
			for r, sample := range index {
				if _, known := d.status[sample]; known && table.IsMissing(values[r]) {
					values[r] = fill(NoMutation)
				}
			}
		}

		outKeys = append(outKeys, cols.Key(i))
		outData = append(outData, values)
	}

	if len(fillLog) > 0 {
		c.Addf(warn.CodeFilledWildtype,
			"in joining the somatic_mutation data, no mutations were found for the following samples, so they were filled with %s or %s: %s",
			WildtypeTumor, WildtypeNormal, strings.Join(fillLog, ", "))
	}

	outCols, err := table.NewColumns(cols.Levels(), outKeys...)
	if err != nil {
		return nil, err
	}
	return table.New(joined.Name(), index, outCols, outData)
}

// wildtypeSentinel maps a sample status to its fill sentinel.
func wildtypeSentinel(status SampleStatus) string {
	if status == StatusNormal {
		return WildtypeNormal
	}
	return WildtypeTumor
}

// allColumnsObjectish reports whether every column of the table has at
// least one surviving cell and nothing but strings and lists. A column
// of numeric or boolean cells fails, and so does a column that is
// entirely missing: with no survivors it cannot witness a list shape.
func allColumnsObjectish(t *table.Table) bool {
	for c := 0; c < t.NumCols(); c++ {
		witnessed := false
		for _, v := range t.ColumnValues(c) {
			if table.IsMissing(v) {
				continue
			}
			switch v.(type) {
			case table.String, table.List:
				witnessed = true
			default:
				return false
			}
		}
		if !witnessed {
			return false
		}
	}
	return true
}
