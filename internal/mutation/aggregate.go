package mutation

import (
	"fmt"
	"strings"

	"github.com/PayneLab/cptac/internal/table"
	"github.com/PayneLab/cptac/internal/warn"
)

// Column suffixes produced by aggregation, per gene.
const (
	MutationSuffix       = "_Mutation"
	LocationSuffix       = "_Location"
	MutationStatusSuffix = "_Mutation_Status"
)

// Mutation status cell values.
const (
	StatusSingle   = "Single_mutation"
	StatusMultiple = "Multiple_mutation"
)

// Filter is an ordered priority list for collapsing multiple mutations
// down to one. A nil *Filter means no collapsing: cells keep the full
// lists. A non-nil Filter with an empty Priority collapses using only
// the default class hierarchy.
type Filter struct {
	// Priority lists preferred mutation types or locations, most
	// preferred first.
	Priority []string
}

// Aggregate groups raw mutation records by sample and gene, producing a
// table with three columns per requested gene: <gene>_Mutation,
// <gene>_Location, and <gene>_Mutation_Status. Genes are deduplicated
// with request order preserved. Samples with no record for a gene get a
// Missing cell in that gene's columns; the wildtype imputer fills those
// downstream.
//
// A gene matching zero records anywhere is a hard InvalidGeneError.
// A filter token matching nothing anywhere is an InvalidFilterError.
func Aggregate(records []Record, genes []string, filter *Filter, prio *Prioritizer, c *warn.Collector) (*table.Table, error) {
	genes = dedupeGenes(genes)

	if filter != nil {
		if err := validateFilter(records, filter.Priority); err != nil {
			return nil, err
		}
	}

	var (
		result       *table.Table
		unknownTypes []string
		absentTokens []string
	)
	for _, gene := range genes {
		geneRecords := recordsForGene(records, gene)
		if len(geneRecords) == 0 {
			return nil, &InvalidGeneError{Gene: gene}
		}

		if filter != nil {
			for _, token := range filter.Priority {
				if !tokenPresent(geneRecords, token) {
					absentTokens = append(absentTokens, fmt.Sprintf("%s for the %s gene", token, gene))
				}
			}
		}

		geneTable, unknown, err := aggregateGene(gene, geneRecords, filter, prio)
		if err != nil {
			return nil, err
		}
		unknownTypes = append(unknownTypes, unknown...)

		if result == nil {
			result = geneTable
		} else {
			result, err = table.OuterJoin(result.Name(), result, geneTable)
			if err != nil {
				return nil, err
			}
		}
	}

	if len(absentTokens) > 0 {
		c.Addf(warn.CodeFilterValueAbsent,
			"the following filter values do not exist in the mutation data for particular genes, though they exist for other genes: %s",
			strings.Join(absentTokens, ", "))
	}
	if len(unknownTypes) > 0 {
		c.Addf(warn.CodeUnknownMutationType,
			"unknown mutation type(s) %s; assigned lowest priority in filtering",
			strings.Join(dedupeStrings(unknownTypes), ", "))
	}
	return result, nil
}

// aggregateGene builds the three columns for one gene over the samples
// that have records for it.
func aggregateGene(gene string, geneRecords []Record, filter *Filter, prio *Prioritizer) (*table.Table, []string, error) {
	samples, bySample := groupBySample(geneRecords)

	mutCells := make([]table.Value, len(samples))
	locCells := make([]table.Value, len(samples))
	statusCells := make([]table.Value, len(samples))
	var unknownTypes []string

	for i, sample := range samples {
		recs := bySample[sample]
		mutations := make([]string, len(recs))
		locations := make([]string, len(recs))
		for j, r := range recs {
			mutations[j] = r.Mutation
			locations[j] = r.Location
		}

		if len(recs) > 1 {
			statusCells[i] = table.String(StatusMultiple)
		} else {
			statusCells[i] = table.String(StatusSingle)
		}

		if filter != nil {
			chosenMut, chosenLoc, unknown := prio.Choose(filter.Priority, mutations, locations)
			unknownTypes = append(unknownTypes, unknown...)
			mutCells[i] = table.String(chosenMut)
			locCells[i] = locationValue(chosenLoc)
		} else {
			mutList := make(table.List, len(mutations))
			locList := make(table.List, len(locations))
			for j := range mutations {
				mutList[j] = table.String(mutations[j])
				locList[j] = locationValue(locations[j])
			}
			mutCells[i] = mutList
			locCells[i] = locList
		}
	}

	t, err := table.NewFlat(
		"somatic_mutation",
		samples,
		[]string{gene + MutationSuffix, gene + LocationSuffix, gene + MutationStatusSuffix},
		[][]table.Value{mutCells, locCells, statusCells},
	)
	if err != nil {
		return nil, nil, err
	}
	return t, unknownTypes, nil
}

// locationValue maps a record location to a cell value.
func locationValue(loc string) table.Value {
	if loc == NoLocation {
		return table.Missing{}
	}
	return table.String(loc)
}

// groupBySample partitions records by sample, preserving record order
// within each sample. Samples come back in first-occurrence order; the
// table constructor sorts the final index.
func groupBySample(records []Record) ([]string, map[string][]Record) {
	var samples []string
	bySample := make(map[string][]Record)
	for _, r := range records {
		if _, ok := bySample[r.Sample]; !ok {
			samples = append(samples, r.Sample)
		}
		bySample[r.Sample] = append(bySample[r.Sample], r)
	}
	return samples, bySample
}

// recordsForGene slices all records for a gene, in record order.
func recordsForGene(records []Record, gene string) []Record {
	var out []Record
	for _, r := range records {
		if r.Gene == gene {
			out = append(out, r)
		}
	}
	return out
}

// validateFilter checks every token exists somewhere in the mutation
// data, as a mutation type or a location.
func validateFilter(records []Record, priority []string) error {
	for _, token := range priority {
		if !tokenPresent(records, token) {
			return &InvalidFilterError{Token: token}
		}
	}
	return nil
}

// tokenPresent reports whether a token occurs in any record's mutation
// type or location.
func tokenPresent(records []Record, token string) bool {
	for _, r := range records {
		if r.Mutation == token || r.Location == token {
			return true
		}
	}
	return false
}

// dedupeGenes canonicalizes gene names and removes duplicates,
// preserving first-occurrence order.
func dedupeGenes(genes []string) []string {
	return dedupeStrings(table.CanonicalIDs(genes))
}

// dedupeStrings removes duplicates preserving first-occurrence order.
func dedupeStrings(in []string) []string {
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
