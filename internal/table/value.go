package table

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a sealed interface representing the cell types a Table may
// hold. Only Missing, String, Int, Float, Bool, and List implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Missing represents an absent cell, inserted by outer joins, padded
// selections, and level harmonization.
type Missing struct{}

func (Missing) value() {}

// String represents a categorical or free-text cell.
type String string

func (String) value() {}

// Int represents an integer measurement cell.
type Int int64

func (Int) value() {}

// Float represents a continuous measurement cell.
type Float float64

func (Float) value() {}

// Bool represents a binary cell, as in somatic_mutation_binary.
type Bool bool

func (Bool) value() {}

// List represents a list-valued cell, as produced by unfiltered
// mutation aggregation. Elements may themselves be Lists.
type List []Value

func (List) value() {}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v Value) bool {
	_, ok := v.(Missing)
	return ok
}

// Equal reports deep equality of two values. Lists are compared
// element-wise; Missing equals only Missing.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Missing:
		return IsMissing(b)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CopyValue returns an independent copy of v. Scalars are returned
// as-is; Lists are copied recursively so callers may mutate their copy.
func CopyValue(v Value) Value {
	list, ok := v.(List)
	if !ok {
		return v
	}
	out := make(List, len(list))
	for i, elem := range list {
		out[i] = CopyValue(elem)
	}
	return out
}

// Strings builds a List of String values.
func Strings(elems ...string) List {
	out := make(List, len(elems))
	for i, e := range elems {
		out[i] = String(e)
	}
	return out
}

// Render formats a value for deterministic text output. Missing renders
// as "NA"; lists render bracketed with comma-separated elements.
func Render(v Value) string {
	switch val := v.(type) {
	case Missing:
		return "NA"
	case String:
		return string(val)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(val))
	case List:
		elems := make([]string, len(val))
		for i, elem := range val {
			elems[i] = Render(elem)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return "NA"
	}
}

// sortedUnique returns a sorted copy of ids with duplicates removed.
func sortedUnique(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	n := 0
	for i, id := range out {
		if i == 0 || id != out[i-1] {
			out[n] = id
			n++
		}
	}
	return out[:n]
}
