// Package table provides the foundational tabular types for cptac.
//
// This package contains the value model, the multi-level column index,
// and the Table container. All other internal packages import table;
// table imports nothing internal. This ensures it remains the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Row indices are unique and sorted ascending at all times
//   - Sample identifiers and labels are NFC normalized on entry
//   - Column index levels are always a subset of the canonical set
//     {Name, Site, Peptide, Database_ID}, in canonical order
//   - Every operation returns a newly derived Table; nothing mutates
//     a Table in place after construction
package table
