package table

import (
	"strings"
)

// Canonical column index level names, in canonical order.
const (
	LevelName       = "Name"
	LevelSite       = "Site"
	LevelPeptide    = "Peptide"
	LevelDatabaseID = "Database_ID"
)

// canonicalLevels lists every allowed level name, in the order levels
// must appear in any column index.
var canonicalLevels = []string{LevelName, LevelSite, LevelPeptide, LevelDatabaseID}

// NoLevelValue marks a level value that was padded in during
// harmonization, or synthesized for an all-missing column. It is the
// column-index analog of the Missing cell value.
const NoLevelValue = ""

// Key is one column's label: one value per index level, in level order.
// A NoLevelValue entry means the column has no value for that level.
type Key []string

// copyKey returns an independent copy of k.
func copyKey(k Key) Key {
	out := make(Key, len(k))
	copy(out, k)
	return out
}

// Columns is an ordered column index with one or more named levels.
// A flat index is a Columns with the single level Name.
//
// INVARIANTS:
//   - levels is a non-empty subset of canonicalLevels, in canonical order
//   - every key has exactly one value per level
type Columns struct {
	levels []string
	keys   []Key
}

// NewColumns builds a column index from level names and keys.
// Level names must be canonical, unique, and in canonical order; every
// key must have one value per level. Key strings are NFC normalized.
func NewColumns(levels []string, keys ...Key) (Columns, error) {
	if len(levels) == 0 {
		return Columns{}, newParameterErrorf("column index must have at least one level")
	}
	pos := -1
	for _, level := range levels {
		p := levelRank(level)
		if p < 0 {
			return Columns{}, newParameterErrorf("unknown column index level %q; valid levels: %s",
				level, strings.Join(canonicalLevels, ", "))
		}
		if p <= pos {
			return Columns{}, newParameterErrorf("column index levels must be unique and in canonical order (%s)",
				strings.Join(canonicalLevels, ", "))
		}
		pos = p
	}
	c := Columns{levels: append([]string(nil), levels...)}
	for _, key := range keys {
		if len(key) != len(levels) {
			return Columns{}, newParameterErrorf("column key %v has %d values for %d levels", key, len(key), len(levels))
		}
		normalized := make(Key, len(key))
		for i, v := range key {
			normalized[i] = CanonicalID(v)
		}
		c.keys = append(c.keys, normalized)
	}
	return c, nil
}

// FlatColumns builds a single-level Name index from plain labels.
func FlatColumns(labels ...string) Columns {
	keys := make([]Key, len(labels))
	for i, label := range labels {
		keys[i] = Key{label}
	}
	c, err := NewColumns([]string{LevelName}, keys...)
	if err != nil {
		panic(err) // unreachable: single Name level is always valid
	}
	return c
}

// levelRank returns the canonical position of a level name, or -1.
func levelRank(level string) int {
	for i, name := range canonicalLevels {
		if name == level {
			return i
		}
	}
	return -1
}

// Levels returns a copy of the level names.
func (c Columns) Levels() []string {
	return append([]string(nil), c.levels...)
}

// NumLevels returns the number of index levels.
func (c Columns) NumLevels() int { return len(c.levels) }

// IsFlat reports whether the index has the single level Name.
func (c Columns) IsFlat() bool { return len(c.levels) == 1 }

// Len returns the number of columns.
func (c Columns) Len() int { return len(c.keys) }

// Key returns a copy of column i's key.
func (c Columns) Key(i int) Key { return copyKey(c.keys[i]) }

// levelIndex returns the position of a level within this index, or -1.
func (c Columns) levelIndex(level string) int {
	for i, name := range c.levels {
		if name == level {
			return i
		}
	}
	return -1
}

// HasLevel reports whether the index carries the named level.
func (c Columns) HasLevel(level string) bool { return c.levelIndex(level) >= 0 }

// Name returns column i's value on the Name level.
func (c Columns) Name(i int) string {
	li := c.levelIndex(LevelName)
	if li < 0 {
		return NoLevelValue
	}
	return c.keys[i][li]
}

// Names returns the Name-level values of every column, in order.
func (c Columns) Names() []string {
	out := make([]string, len(c.keys))
	for i := range c.keys {
		out[i] = c.Name(i)
	}
	return out
}

// IndicesForName returns the positions of every column whose Name-level
// value equals name, in index order.
func (c Columns) IndicesForName(name string) []int {
	name = CanonicalID(name)
	var out []int
	for i := range c.keys {
		if c.Name(i) == name {
			out = append(out, i)
		}
	}
	return out
}

// WithNameSuffix returns a copy of the index with suffix appended to
// every Name-level value, preserving provenance across joins.
func (c Columns) WithNameSuffix(suffix string) Columns {
	out := c.clone()
	li := out.levelIndex(LevelName)
	if li < 0 {
		return out
	}
	for _, key := range out.keys {
		if key[li] != NoLevelValue {
			key[li] = key[li] + suffix
		}
	}
	return out
}

// append returns a copy of c extended with every key of other.
// Both indices must have identical levels.
func (c Columns) append(other Columns) (Columns, error) {
	if !levelsEqual(c.levels, other.levels) {
		return Columns{}, newParameterErrorf("cannot append column index with levels %v to index with levels %v",
			other.levels, c.levels)
	}
	out := c.clone()
	for _, key := range other.keys {
		out.keys = append(out.keys, copyKey(key))
	}
	return out, nil
}

// clone returns a deep copy of the index.
func (c Columns) clone() Columns {
	out := Columns{levels: append([]string(nil), c.levels...)}
	out.keys = make([]Key, len(c.keys))
	for i, key := range c.keys {
		out.keys[i] = copyKey(key)
	}
	return out
}

// levelsEqual reports whether two level-name slices are identical.
func levelsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AlignLevels upgrades both indices to the union of their levels, in
// canonical order, padding missing level values with NoLevelValue.
// A side whose levels already cover the other's is returned unchanged,
// which makes the operation idempotent.
func AlignLevels(a, b Columns) (Columns, Columns) {
	return addLevels(a, b), addLevels(b, a)
}

// addLevels returns `to` upgraded with any levels of `source` it lacks.
func addLevels(to, source Columns) Columns {
	covered := true
	for _, level := range source.levels {
		if !to.HasLevel(level) {
			covered = false
			break
		}
	}
	if covered {
		return to
	}

	var levels []string
	for _, level := range canonicalLevels {
		if to.HasLevel(level) || source.HasLevel(level) {
			levels = append(levels, level)
		}
	}

	out := Columns{levels: levels}
	out.keys = make([]Key, len(to.keys))
	for i, key := range to.keys {
		newKey := make(Key, len(levels))
		for j, level := range levels {
			if li := to.levelIndex(level); li >= 0 {
				newKey[j] = key[li]
			} else {
				newKey[j] = NoLevelValue
			}
		}
		out.keys[i] = newKey
	}
	return out
}
