// Package harness loads dataset fixtures from YAML and compares join
// output against golden files. It stands in for the out-of-scope data
// loader in tests and in the CLI.
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PayneLab/cptac/internal/dataset"
	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
)

// Fixture describes one in-memory dataset: its cancer type, its
// omics/metadata tables, and its raw mutation records.
type Fixture struct {
	// Name identifies the fixture, and names its golden files.
	Name string `yaml:"name"`

	// CancerType selects the mutation class configuration entry.
	CancerType string `yaml:"cancer_type"`

	// Tables lists the omics and metadata tables.
	Tables []FixtureTable `yaml:"tables"`

	// Mutations lists the raw per-record mutation calls.
	Mutations []FixtureMutation `yaml:"mutations,omitempty"`
}

// FixtureTable is one rectangular table in a fixture.
type FixtureTable struct {
	// Name is the registry name, e.g. "proteomics".
	Name string `yaml:"name"`

	// Category is "omics" or "metadata".
	Category string `yaml:"category"`

	// Levels names the column index levels. Empty means a flat Name
	// index.
	Levels []string `yaml:"levels,omitempty"`

	// Columns holds one key per column: a plain string for a flat
	// index, or a list of level values. A null level value means the
	// level is padded for that column.
	Columns []yaml.Node `yaml:"columns"`

	// Samples is the row index.
	Samples []string `yaml:"samples"`

	// Rows holds one list of cell values per sample, in column order.
	// null cells decode to Missing.
	Rows [][]any `yaml:"rows"`
}

// FixtureMutation is one raw mutation record.
type FixtureMutation struct {
	Sample   string `yaml:"sample"`
	Gene     string `yaml:"gene"`
	Mutation string `yaml:"mutation"`
	Location string `yaml:"location,omitempty"`
}

// Load reads a fixture from a YAML file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return &f, nil
}

// Build assembles the fixture into a Dataset.
func (f *Fixture) Build(opts ...dataset.Option) (*dataset.Dataset, error) {
	b := dataset.NewBuilder(f.CancerType, opts...)
	for _, ft := range f.Tables {
		t, err := ft.toTable()
		if err != nil {
			return nil, err
		}
		b.AddTable(dataset.Category(ft.Category), t)
	}
	if len(f.Mutations) > 0 {
		records := make([]mutation.Record, len(f.Mutations))
		for i, m := range f.Mutations {
			records[i] = mutation.Record{
				Sample:   m.Sample,
				Gene:     m.Gene,
				Mutation: m.Mutation,
				Location: m.Location,
			}
		}
		b.AddMutations(records)
	}
	return b.Build()
}

// toTable converts one fixture table to a table.Table.
func (ft FixtureTable) toTable() (*table.Table, error) {
	levels := ft.Levels
	if len(levels) == 0 {
		levels = []string{table.LevelName}
	}

	keys := make([]table.Key, len(ft.Columns))
	for i, node := range ft.Columns {
		key, err := decodeKey(node, len(levels))
		if err != nil {
			return nil, fmt.Errorf("table %s, column %d: %w", ft.Name, i, err)
		}
		keys[i] = key
	}
	cols, err := table.NewColumns(levels, keys...)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", ft.Name, err)
	}

	if len(ft.Rows) != len(ft.Samples) {
		return nil, fmt.Errorf("table %s: %d rows for %d samples", ft.Name, len(ft.Rows), len(ft.Samples))
	}
	data := make([][]table.Value, len(keys))
	for c := range data {
		data[c] = make([]table.Value, len(ft.Samples))
	}
	for r, row := range ft.Rows {
		if len(row) != len(keys) {
			return nil, fmt.Errorf("table %s, row %d: %d cells for %d columns", ft.Name, r, len(row), len(keys))
		}
		for c, cell := range row {
			v, err := toValue(cell)
			if err != nil {
				return nil, fmt.Errorf("table %s, row %d, cell %d: %w", ft.Name, r, c, err)
			}
			data[c][r] = v
		}
	}
	return table.New(ft.Name, ft.Samples, cols, data)
}

// decodeKey reads one column key node: a scalar string, or a sequence
// of level values with null marking a padded level.
func decodeKey(node yaml.Node, numLevels int) (table.Key, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if numLevels != 1 {
			return nil, fmt.Errorf("scalar column key for a %d-level index", numLevels)
		}
		return table.Key{node.Value}, nil
	case yaml.SequenceNode:
		key := make(table.Key, len(node.Content))
		for i, item := range node.Content {
			if item.Tag == "!!null" {
				key[i] = table.NoLevelValue
				continue
			}
			key[i] = item.Value
		}
		return key, nil
	default:
		return nil, fmt.Errorf("column key must be a string or a sequence")
	}
}

// toValue converts a decoded YAML cell into a table Value.
func toValue(cell any) (table.Value, error) {
	switch v := cell.(type) {
	case nil:
		return table.Missing{}, nil
	case string:
		return table.String(v), nil
	case int:
		return table.Int(v), nil
	case int64:
		return table.Int(v), nil
	case float64:
		return table.Float(v), nil
	case bool:
		return table.Bool(v), nil
	case []any:
		out := make(table.List, len(v))
		for i, elem := range v {
			ev, err := toValue(elem)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported cell type %T", cell)
	}
}
