// Package warn provides per-call warning aggregation for the join and
// selection operations. Expected, recoverable gaps (missing requested
// columns, rows inserted by an outer join, wildtype back-fills) are not
// errors: they are batched into one warning per condition per call,
// logged as they are collected, and returned alongside the result.
package warn

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Code categorizes warnings.
type Code string

const (
	// CodeMissingColumns indicates requested columns were not found and
	// were inserted as all-missing.
	CodeMissingColumns Code = "MISSING_COLUMNS"

	// CodeInsertedMissing indicates an outer join inserted rows that
	// are entirely missing on one side.
	CodeInsertedMissing Code = "INSERTED_MISSING"

	// CodeFilledWildtype indicates samples with no mutation record were
	// back-filled with wildtype sentinels.
	CodeFilledWildtype Code = "FILLED_WILDTYPE"

	// CodeUnknownMutationType indicates a mutation type outside the
	// configured classes was assigned lowest priority.
	CodeUnknownMutationType Code = "UNKNOWN_MUTATION_TYPE"

	// CodeFilterValueAbsent indicates a priority-filter token exists in
	// the mutation data but not for a particular gene.
	CodeFilterValueAbsent Code = "FILTER_VALUE_ABSENT"

	// CodeDuplicateHeaders indicates a level drop left duplicate column
	// headers behind.
	CodeDuplicateHeaders Code = "DUPLICATE_HEADERS"

	// CodeFlattenFlatIndex indicates a flatten request on an index that
	// was already flat, so nothing changed.
	CodeFlattenFlatIndex Code = "FLATTEN_FLAT_INDEX"
)

// Warning is one aggregated, human-readable notice from a single call.
type Warning struct {
	// Code identifies the warning category.
	Code Code

	// Message is the batched, human-readable description.
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Collector accumulates warnings for one call. Each collector carries a
// UUID call token so log records from the same call can be correlated.
//
// Collector is not safe for concurrent use; every call constructs its
// own.
type Collector struct {
	callID   string
	logger   *slog.Logger
	warnings []Warning
}

// NewCollector creates a collector logging through logger. A nil
// logger falls back to slog.Default().
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{callID: uuid.NewString(), logger: logger}
}

// CallID returns the collector's call token.
func (c *Collector) CallID() string { return c.callID }

// Addf records one aggregated warning and logs it.
func (c *Collector) Addf(code Code, format string, args ...any) {
	w := Warning{Code: code, Message: fmt.Sprintf(format, args...)}
	c.warnings = append(c.warnings, w)
	c.logger.Warn(w.Message, "code", string(code), "call_id", c.callID)
}

// Extend appends previously collected warnings, re-logging nothing.
// Used when a sub-operation ran with its own collector.
func (c *Collector) Extend(ws []Warning) {
	c.warnings = append(c.warnings, ws...)
}

// Warnings returns the collected warnings in collection order.
func (c *Collector) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}
