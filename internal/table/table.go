package table

import (
	"sort"
)

// Table is rectangular data keyed by a unique, ascending-sorted
// sample-identifier row index. Storage is column-major: data[c][r].
type Table struct {
	name  string
	index []string
	cols  Columns
	data  [][]Value
}

// New builds a Table from a row index, a column index, and column-major
// data. The row index is NFC normalized and must be free of duplicates;
// rows are sorted ascending, with data permuted to match. Every column
// must have exactly one value per row.
func New(name string, index []string, cols Columns, data [][]Value) (*Table, error) {
	if len(data) != cols.Len() {
		return nil, newParameterErrorf("table %s: %d data columns for %d column keys", name, len(data), cols.Len())
	}
	for i, col := range data {
		if len(col) != len(index) {
			return nil, newParameterErrorf("table %s: column %d has %d values for %d rows", name, i, len(col), len(index))
		}
	}

	index = CanonicalIDs(index)
	unique := sortedUnique(index)
	if len(unique) != len(index) {
		return nil, newParameterErrorf("table %s: duplicate sample identifiers in row index", name)
	}

	// Sort rows ascending, permuting every column alongside the index.
	perm := make([]int, len(index))
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm, func(a, b int) bool { return index[perm[a]] < index[perm[b]] })

	t := &Table{
		name:  name,
		index: make([]string, len(index)),
		cols:  cols.clone(),
		data:  make([][]Value, len(data)),
	}
	for i, p := range perm {
		t.index[i] = index[p]
	}
	for c, col := range data {
		sorted := make([]Value, len(col))
		for i, p := range perm {
			sorted[i] = CopyValue(col[p])
		}
		t.data[c] = sorted
	}
	return t, nil
}

// NewFlat builds a Table with a single-level Name column index.
func NewFlat(name string, index []string, labels []string, data [][]Value) (*Table, error) {
	return New(name, index, FlatColumns(labels...), data)
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Index returns a copy of the row index.
func (t *Table) Index() []string {
	return append([]string(nil), t.index...)
}

// Columns returns a copy of the column index.
func (t *Table) Columns() Columns { return t.cols.clone() }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.index) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.data) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return len(t.index), len(t.data) }

// RowPos returns the position of a sample identifier in the row index,
// or -1 if absent.
func (t *Table) RowPos(sample string) int {
	sample = CanonicalID(sample)
	i := sort.SearchStrings(t.index, sample)
	if i < len(t.index) && t.index[i] == sample {
		return i
	}
	return -1
}

// At returns the cell at row r, column c. Lists are copied so callers
// may mutate the result freely.
func (t *Table) At(r, c int) Value {
	return CopyValue(t.data[c][r])
}

// ColumnValues returns a copy of column c's values, in row order.
func (t *Table) ColumnValues(c int) []Value {
	out := make([]Value, len(t.data[c]))
	for i, v := range t.data[c] {
		out[i] = CopyValue(v)
	}
	return out
}

// Copy returns a fully independent copy of the table.
func (t *Table) Copy() *Table {
	out := &Table{
		name:  t.name,
		index: append([]string(nil), t.index...),
		cols:  t.cols.clone(),
		data:  make([][]Value, len(t.data)),
	}
	for c, col := range t.data {
		copied := make([]Value, len(col))
		for i, v := range col {
			copied[i] = CopyValue(v)
		}
		out.data[c] = copied
	}
	return out
}

// Rename returns a copy of the table under a new name.
func (t *Table) Rename(name string) *Table {
	out := t.Copy()
	out.name = name
	return out
}

// WithColumns returns a copy of the table with its column index
// replaced. The new index must describe the same number of columns.
func (t *Table) WithColumns(cols Columns) (*Table, error) {
	if cols.Len() != t.NumCols() {
		return nil, newParameterErrorf("table %s: replacement column index has %d keys for %d columns",
			t.name, cols.Len(), t.NumCols())
	}
	out := t.Copy()
	out.cols = cols.clone()
	return out, nil
}

// Select returns a new table restricted to the given column positions,
// in the given order. Positions may repeat.
func (t *Table) Select(positions []int) *Table {
	out := &Table{
		name:  t.name,
		index: append([]string(nil), t.index...),
		cols:  Columns{levels: append([]string(nil), t.cols.levels...)},
	}
	for _, p := range positions {
		out.cols.keys = append(out.cols.keys, copyKey(t.cols.keys[p]))
		col := make([]Value, len(t.data[p]))
		for i, v := range t.data[p] {
			col[i] = CopyValue(v)
		}
		out.data = append(out.data, col)
	}
	return out
}

// AppendColumn returns a copy of the table with one extra column. The
// key must match the table's levels; values must cover every row.
func (t *Table) AppendColumn(key Key, values []Value) (*Table, error) {
	if len(key) != t.cols.NumLevels() {
		return nil, newParameterErrorf("table %s: column key %v has %d values for %d levels",
			t.name, key, len(key), t.cols.NumLevels())
	}
	if len(values) != t.NumRows() {
		return nil, newParameterErrorf("table %s: appended column has %d values for %d rows",
			t.name, len(values), t.NumRows())
	}
	out := t.Copy()
	normalized := make(Key, len(key))
	for i, v := range key {
		normalized[i] = CanonicalID(v)
	}
	out.cols.keys = append(out.cols.keys, normalized)
	col := make([]Value, len(values))
	for i, v := range values {
		col[i] = CopyValue(v)
	}
	out.data = append(out.data, col)
	return out, nil
}

// Reindex returns a new table whose row index is exactly newIndex
// (sorted, deduplicated). Rows absent from the source are filled with
// Missing in every column.
func (t *Table) Reindex(newIndex []string) *Table {
	idx := sortedUnique(CanonicalIDs(newIndex))
	out := &Table{
		name:  t.name,
		index: idx,
		cols:  t.cols.clone(),
		data:  make([][]Value, len(t.data)),
	}
	for c := range t.data {
		col := make([]Value, len(idx))
		for i, sample := range idx {
			if p := t.RowPos(sample); p >= 0 {
				col[i] = CopyValue(t.data[c][p])
			} else {
				col[i] = Missing{}
			}
		}
		out.data[c] = col
	}
	return out
}

// UnionIndex returns the sorted union of two row indices.
func UnionIndex(a, b []string) []string {
	return sortedUnique(append(append([]string(nil), a...), b...))
}

// DifferenceIndex returns the sorted members of a that are absent
// from b.
func DifferenceIndex(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}
	var out []string
	for _, id := range sortedUnique(a) {
		if _, ok := inB[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// OuterJoin joins two tables on their row indices: the result's index
// is the sorted union, the columns are left's followed by right's, and
// rows absent from either side are filled with Missing on that side.
// Both tables must have identical column index levels; harmonize with
// AlignLevels first.
func OuterJoin(name string, left, right *Table) (*Table, error) {
	if !levelsEqual(left.cols.levels, right.cols.levels) {
		return nil, newParameterErrorf("outer join of %s and %s: column index levels differ (%v vs %v); harmonize first",
			left.name, right.name, left.cols.levels, right.cols.levels)
	}
	union := UnionIndex(left.index, right.index)
	l := left.Reindex(union)
	r := right.Reindex(union)

	cols, err := l.cols.append(r.cols)
	if err != nil {
		return nil, err
	}
	out := &Table{
		name:  name,
		index: union,
		cols:  cols,
		data:  append(l.data, r.data...),
	}
	return out, nil
}
