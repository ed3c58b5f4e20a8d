package dataset

import (
	"log/slog"
	"sort"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
)

// Category classifies a registered table. The category governs which
// operations may use the table and which join defaults apply.
type Category string

const (
	CategoryOmics    Category = "omics"
	CategoryMetadata Category = "metadata"
	CategoryMutation Category = "mutation"
)

// validOmicsTables whitelists the table names usable as the omics side
// of a join or selection.
var validOmicsTables = []string{
	"acetylproteomics",
	"circular_RNA",
	"CNV",
	"lipidomics",
	"metabolomics",
	"miRNA",
	"phosphoproteomics",
	"phosphoproteomics_gene",
	"proteomics",
	"somatic_mutation_binary",
	"transcriptomics",
}

// validMetadataTables whitelists the metadata table names. Tables with
// multiple rows per sample (treatment, medical_history) are excluded.
var validMetadataTables = []string{
	"clinical",
	"derived_molecular",
	"experimental_design",
}

// Clinical column and imputation sentinels.
const (
	SampleTumorNormalColumn = "Sample_Tumor_Normal"
	SampleStatusColumn      = "Sample_Status"
	WildtypeTumor           = "Wildtype_Tumor"
	WildtypeNormal          = "Wildtype_Normal"
	NoMutation              = "No_mutation"
)

// SampleStatus is a sample's tumor/normal classification.
type SampleStatus string

const (
	StatusTumor  SampleStatus = "Tumor"
	StatusNormal SampleStatus = "Normal"
)

// SampleStatusMap maps sample identifiers to their status. Samples
// absent from the map have unknown status and are never imputed.
type SampleStatusMap map[string]SampleStatus

// Dataset is the read-only table registry plus the join engine over
// it. Build one with a Builder; after Build the dataset never mutates,
// and every accessor hands out independent copies.
type Dataset struct {
	cancerType  string
	logger      *slog.Logger
	tables      map[string]*table.Table
	categories  map[string]Category
	mutations   []mutation.Record
	status      SampleStatusMap
	prioritizer *mutation.Prioritizer
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger warnings are emitted through.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithClassConfig replaces the built-in mutation class configuration.
func WithClassConfig(cfg mutation.ClassConfig) Option {
	return func(b *Builder) { b.classConfig = cfg }
}

// Builder assembles a Dataset. The loader feeding it is out of scope
// for this module; tests and the CLI use the harness fixtures.
type Builder struct {
	cancerType  string
	logger      *slog.Logger
	classConfig mutation.ClassConfig
	tables      map[string]*table.Table
	categories  map[string]Category
	mutations   []mutation.Record
	err         error
}

// NewBuilder starts a Builder for one cancer type.
func NewBuilder(cancerType string, opts ...Option) *Builder {
	b := &Builder{
		cancerType:  cancerType,
		classConfig: mutation.DefaultClassConfig(),
		tables:      make(map[string]*table.Table),
		categories:  make(map[string]Category),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddTable registers a table under a category. The table is copied;
// later changes to the caller's value cannot reach the registry.
// Registering the same name twice, or a table under the mutation
// category (use AddMutations), fails the eventual Build.
func (b *Builder) AddTable(category Category, t *table.Table) *Builder {
	if b.err != nil {
		return b
	}
	switch category {
	case CategoryOmics, CategoryMetadata:
	case CategoryMutation:
		b.err = newInvalidParameterErrorf("mutation data is per-record; register it with AddMutations, not AddTable")
		return b
	default:
		b.err = newInvalidParameterErrorf("unknown table category %q", category)
		return b
	}
	if _, dup := b.tables[t.Name()]; dup {
		b.err = newInvalidParameterErrorf("table %s registered twice", t.Name())
		return b
	}
	b.tables[t.Name()] = t.Copy()
	b.categories[t.Name()] = category
	return b
}

// AddMutations registers the raw somatic mutation records.
func (b *Builder) AddMutations(records []mutation.Record) *Builder {
	if b.err != nil {
		return b
	}
	b.mutations = append(b.mutations, mutation.CanonicalRecords(records)...)
	return b
}

// Build validates the class configuration, derives the sample status
// map from the clinical table, and freezes the dataset.
func (b *Builder) Build() (*Dataset, error) {
	if b.err != nil {
		return nil, b.err
	}
	prioritizer, err := mutation.NewPrioritizer(b.classConfig, b.cancerType)
	if err != nil {
		return nil, err
	}
	d := &Dataset{
		cancerType:  b.cancerType,
		logger:      b.logger,
		tables:      b.tables,
		categories:  b.categories,
		mutations:   b.mutations,
		prioritizer: prioritizer,
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.status = deriveStatusMap(b.tables["clinical"])
	return d, nil
}

// deriveStatusMap reads the Sample_Tumor_Normal column of the clinical
// table once. Cells that are neither Tumor nor Normal leave the sample
// out of the map entirely: unknown status means no imputation.
func deriveStatusMap(clinical *table.Table) SampleStatusMap {
	status := make(SampleStatusMap)
	if clinical == nil {
		return status
	}
	cols := clinical.Columns()
	positions := cols.IndicesForName(SampleTumorNormalColumn)
	if len(positions) == 0 {
		return status
	}
	values := clinical.ColumnValues(positions[0])
	for i, sample := range clinical.Index() {
		if s, ok := values[i].(table.String); ok {
			switch SampleStatus(s) {
			case StatusTumor, StatusNormal:
				status[sample] = SampleStatus(s)
			}
		}
	}
	return status
}

// CancerType returns the dataset's cancer type tag.
func (d *Dataset) CancerType() string { return d.cancerType }

// Table returns an independent copy of a registered table.
func (d *Dataset) Table(name string) (*table.Table, error) {
	t, ok := d.tables[name]
	if !ok {
		return nil, &InvalidTableError{Name: name}
	}
	return t.Copy(), nil
}

// MutationRecords returns a copy of the raw mutation records.
func (d *Dataset) MutationRecords() []mutation.Record {
	return append([]mutation.Record(nil), d.mutations...)
}

// SampleStatuses returns a copy of the sample status map.
func (d *Dataset) SampleStatuses() SampleStatusMap {
	out := make(SampleStatusMap, len(d.status))
	for k, v := range d.status {
		out[k] = v
	}
	return out
}

// TableInfo describes one registered table for introspection.
type TableInfo struct {
	Name     string
	Category Category
	Rows     int
	Cols     int
}

// Tables lists the registered tables, sorted by name. The raw mutation
// records are reported as one pseudo-table named somatic_mutation.
func (d *Dataset) Tables() []TableInfo {
	out := make([]TableInfo, 0, len(d.tables)+1)
	for name, t := range d.tables {
		rows, cols := t.Shape()
		out = append(out, TableInfo{Name: name, Category: d.categories[name], Rows: rows, Cols: cols})
	}
	if len(d.mutations) > 0 {
		out = append(out, TableInfo{Name: "somatic_mutation", Category: CategoryMutation, Rows: len(d.mutations), Cols: 3})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// checkValid verifies a table exists and is whitelisted for the given
// category.
func (d *Dataset) checkValid(name string, category Category) error {
	var whitelist []string
	switch category {
	case CategoryOmics:
		whitelist = validOmicsTables
	case CategoryMetadata:
		whitelist = validMetadataTables
	default:
		return newInvalidParameterErrorf("invalid category %q passed to checkValid", category)
	}

	if _, ok := d.tables[name]; !ok {
		return &InvalidTableError{Name: name, Category: category}
	}
	for _, valid := range whitelist {
		if name == valid {
			if d.categories[name] == category {
				return nil
			}
			break
		}
	}
	// Report only the valid names actually present in this dataset.
	var present []string
	for _, valid := range whitelist {
		if _, ok := d.tables[valid]; ok && d.categories[valid] == category {
			present = append(present, valid)
		}
	}
	return &InvalidTableError{Name: name, Category: category, Registered: true, Valid: present}
}
