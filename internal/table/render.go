package table

import (
	"strings"
)

// RenderTSV renders the table as deterministic tab-separated text: one
// header line per column index level, then one line per row. Used for
// golden-file comparison and CLI output.
func (t *Table) RenderTSV() string {
	var b strings.Builder

	for li, level := range t.cols.levels {
		b.WriteString(level)
		for _, key := range t.cols.keys {
			b.WriteByte('\t')
			if key[li] == NoLevelValue {
				b.WriteString("NA")
			} else {
				b.WriteString(key[li])
			}
		}
		b.WriteByte('\n')
	}

	for r, sample := range t.index {
		b.WriteString(sample)
		for c := range t.data {
			b.WriteByte('\t')
			b.WriteString(Render(t.data[c][r]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
