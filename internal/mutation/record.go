package mutation

import (
	"github.com/PayneLab/cptac/internal/table"
)

// NoLocation marks a mutation record with no reported location.
const NoLocation = ""

// Record is one observed mutation call. A sample/gene pair may have
// zero or more records.
type Record struct {
	// Sample is the sample identifier the call was observed in.
	Sample string

	// Gene is the affected gene.
	Gene string

	// Mutation is the mutation type label, e.g. "Missense_Mutation".
	Mutation string

	// Location is the reported location, e.g. "p.R273H". NoLocation
	// when the call carries no location.
	Location string
}

// Canonical returns the record with its sample and gene identifiers
// NFC normalized, matching the table package's identifier scheme.
func (r Record) Canonical() Record {
	r.Sample = table.CanonicalID(r.Sample)
	r.Gene = table.CanonicalID(r.Gene)
	return r
}

// CanonicalRecords normalizes a slice of records, returning a new slice.
func CanonicalRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Canonical()
	}
	return out
}
