package table

import (
	"strings"
)

// DropLevels returns a copy of the table with the named column index
// levels removed. It returns the number of column headers left
// duplicated by the drop, so callers can surface a warning.
//
// Errors: dropping from a flat index, dropping every level, or naming a
// level the index does not carry.
func (t *Table) DropLevels(levels []string) (*Table, int, error) {
	if t.cols.IsFlat() {
		return nil, 0, newParameterErrorf("table %s: cannot drop levels from a column index with only one level", t.name)
	}
	if len(levels) >= t.cols.NumLevels() {
		return nil, 0, newParameterErrorf("table %s: cannot drop %d of %d column index levels; at least one must remain",
			t.name, len(levels), t.cols.NumLevels())
	}
	drop := make(map[string]struct{}, len(levels))
	for _, level := range levels {
		if !t.cols.HasLevel(level) {
			return nil, 0, newParameterErrorf("table %s: level %q does not exist in column index; existing levels: %s",
				t.name, level, strings.Join(t.cols.levels, ", "))
		}
		drop[level] = struct{}{}
	}

	var kept []int
	var keptNames []string
	for i, level := range t.cols.levels {
		if _, ok := drop[level]; !ok {
			kept = append(kept, i)
			keptNames = append(keptNames, level)
		}
	}

	out := t.Copy()
	out.cols = Columns{levels: keptNames}
	out.cols.keys = make([]Key, len(t.cols.keys))
	for i, key := range t.cols.keys {
		newKey := make(Key, len(kept))
		for j, li := range kept {
			newKey[j] = key[li]
		}
		out.cols.keys[i] = newKey
	}

	return out, out.cols.duplicatedCount(), nil
}

// Flatten returns a copy of the table with its column index collapsed
// to a single Name level: each column's non-missing level values joined
// with sep. The second return is false when the index was already flat,
// in which case the table is returned unchanged.
func (t *Table) Flatten(sep string) (*Table, bool) {
	if t.cols.IsFlat() {
		return t.Copy(), false
	}
	out := t.Copy()
	flat := Columns{levels: []string{LevelName}}
	flat.keys = make([]Key, len(t.cols.keys))
	for i, key := range t.cols.keys {
		var parts []string
		for _, v := range key {
			if v != NoLevelValue {
				parts = append(parts, v)
			}
		}
		flat.keys[i] = Key{strings.Join(parts, sep)}
	}
	out.cols = flat
	return out, true
}

// duplicatedCount returns how many columns share a full key with at
// least one other column.
func (c Columns) duplicatedCount() int {
	seen := make(map[string]int, len(c.keys))
	for _, key := range c.keys {
		seen[strings.Join(key, "\x1f")]++
	}
	count := 0
	for _, key := range c.keys {
		if seen[strings.Join(key, "\x1f")] > 1 {
			count++
		}
	}
	return count
}
