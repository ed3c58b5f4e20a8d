package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PayneLab/cptac/internal/mutation"
	"github.com/PayneLab/cptac/internal/table"
)

// InvalidTableError indicates a table that is unknown to the registry,
// or registered under a different category than the operation needs.
type InvalidTableError struct {
	// Name is the requested table name.
	Name string

	// Category is the category the operation required.
	Category Category

	// Registered reports whether the name exists at all in the
	// registry. False means unknown; true means miscategorized.
	Registered bool

	// Valid lists the names valid for Category in this dataset.
	Valid []string
}

// Error implements the error interface.
func (e *InvalidTableError) Error() string {
	if !e.Registered {
		return fmt.Sprintf("%s table not included in this dataset", e.Name)
	}
	return fmt.Sprintf("%s is not a valid %s table for this function in this dataset; valid options: %s",
		e.Name, e.Category, strings.Join(e.Valid, ", "))
}

// IsInvalidTable returns true if the error is an InvalidTableError.
// Uses errors.As to handle wrapped errors.
func IsInvalidTable(err error) bool {
	var te *InvalidTableError
	return errors.As(err, &te)
}

// InvalidColumnError indicates a strict metadata lookup miss. Metadata
// lookup is asymmetric from the lenient omics lookup: an unmatched
// metadata column is a hard error, never a warning.
type InvalidColumnError struct {
	// Table is the metadata table searched.
	Table string

	// Columns lists every requested column that was not found.
	Columns []string
}

// Error implements the error interface.
func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("the following columns were not found in the %s table: %s",
		e.Table, strings.Join(e.Columns, ", "))
}

// IsInvalidColumn returns true if the error is an InvalidColumnError.
func IsInvalidColumn(err error) bool {
	var ce *InvalidColumnError
	return errors.As(err, &ce)
}

// InvalidParameterError indicates a malformed argument: empty gene
// lists where genes are required, bad filter shapes, or misuse of the
// table primitives.
type InvalidParameterError struct {
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return e.Message
}

// IsInvalidParameter returns true for any parameter-shaped failure:
// a dataset InvalidParameterError, a mutation filter validation error,
// or a table primitive ParameterError.
func IsInvalidParameter(err error) bool {
	var pe *InvalidParameterError
	if errors.As(err, &pe) {
		return true
	}
	return mutation.IsInvalidFilter(err) || table.IsParameterError(err)
}

// IsInvalidGene returns true if the error reports a gene with zero
// matching mutation records.
func IsInvalidGene(err error) bool {
	return mutation.IsInvalidGene(err)
}

// IsConfigurationError returns true for internal category or class
// configuration inconsistencies. These are programmer-facing and fatal.
func IsConfigurationError(err error) bool {
	return mutation.IsConfigError(err)
}

func newInvalidParameterErrorf(format string, args ...any) *InvalidParameterError {
	return &InvalidParameterError{Message: fmt.Sprintf(format, args...)}
}
