package table

import "golang.org/x/text/unicode/norm"

// CanonicalID returns the NFC-normalized form of a sample identifier or
// column label. All identifiers are normalized on entry so that lookups
// never depend on the Unicode representation the loader happened to use.
func CanonicalID(s string) string {
	return norm.NFC.String(s)
}

// CanonicalIDs normalizes a slice of identifiers, returning a new slice.
func CanonicalIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = CanonicalID(id)
	}
	return out
}
