package mutation

import (
	"errors"
	"fmt"
)

// InvalidGeneError indicates a requested gene has zero matching records
// anywhere in the mutation data. The request yields literally nothing,
// so this is a hard error rather than a warning.
type InvalidGeneError struct {
	// Gene is the gene that matched no records.
	Gene string
}

// Error implements the error interface.
func (e *InvalidGeneError) Error() string {
	return fmt.Sprintf("%s gene not found in somatic_mutation data", e.Gene)
}

// IsInvalidGene returns true if the error is an InvalidGeneError.
// Uses errors.As to handle wrapped errors.
func IsInvalidGene(err error) bool {
	var ge *InvalidGeneError
	return errors.As(err, &ge)
}

// InvalidFilterError indicates a malformed priority filter: a token
// that exists nowhere in the mutation data's types or locations.
type InvalidFilterError struct {
	// Token is the offending filter value.
	Token string
}

// Error implements the error interface.
func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("filter value %s does not exist in the somatic_mutation data; check for typos", e.Token)
}

// IsInvalidFilter returns true if the error is an InvalidFilterError.
func IsInvalidFilter(err error) bool {
	var fe *InvalidFilterError
	return errors.As(err, &fe)
}

// ConfigError indicates an invalid mutation class configuration.
// Configuration is validated up front; these errors are programmer or
// deployment facing and fatal to the call.
type ConfigError struct {
	// Message describes the schema violation.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid mutation class config: %s", e.Message)
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func newConfigErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}
