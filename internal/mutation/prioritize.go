package mutation

// Prioritizer selects one representative mutation call from several
// competing records for a sample/gene pair. The tie-break hierarchy is
// deterministic: user-supplied filter tokens first, then the cancer
// type's truncating class, then missense, then noncoding (when the
// configuration defines one), then everything left as silent, resolved
// within the winning set by smallest parsed location.
type Prioritizer struct {
	classes Classes
	silent  map[string]struct{}
}

// NewPrioritizer builds a Prioritizer for one cancer type from a
// validated class configuration.
func NewPrioritizer(cfg ClassConfig, cancerType string) (*Prioritizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Prioritizer{
		classes: cfg.ForCancerType(cancerType),
		silent:  make(map[string]struct{}, len(cfg.Silent)),
	}
	for _, s := range cfg.Silent {
		p.silent[s] = struct{}{}
	}
	return p, nil
}

// Choose picks one (mutation, location) pair from parallel equal-length
// lists for a single sample/gene. The returned unknown slice lists any
// mutation types outside the configured classes that were assigned
// lowest priority, so the caller can batch a warning.
//
// The location may be NoLocation when the chosen record had none.
func (p *Prioritizer) Choose(filter []string, mutations, locations []string) (mutation, location string, unknown []string) {
	candidates := p.filterCandidates(filter, mutations, locations)

	if len(candidates) == 0 {
		candidates = classCandidates(mutations, p.classes.Truncating)
	}
	if len(candidates) == 0 {
		candidates = classCandidates(mutations, p.classes.Missense)
	}
	if len(candidates) == 0 && len(p.classes.Noncoding) > 0 {
		candidates = classCandidates(mutations, p.classes.Noncoding)
	}

	if len(candidates) == 0 {
		// Everything left should be silent. Anything else is unknown
		// and shares the lowest rung; location alone decides.
		for _, m := range mutations {
			if _, ok := p.silent[m]; !ok {
				unknown = append(unknown, m)
			}
		}
		candidates = make([]int, len(mutations))
		for i := range mutations {
			candidates[i] = i
		}
	}

	best := soonestLocation(candidates, locations)
	return mutations[best], locations[best], unknown
}

// filterCandidates scans the filter tokens in order. For each token,
// candidates are the indices whose mutation matches, or failing that
// whose location matches. The first token yielding any candidate wins.
func (p *Prioritizer) filterCandidates(filter []string, mutations, locations []string) []int {
	for _, token := range filter {
		var matched []int
		for i, m := range mutations {
			if m == token {
				matched = append(matched, i)
			}
		}
		if len(matched) == 0 {
			for i, loc := range locations {
				if loc == token {
					matched = append(matched, i)
				}
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	return nil
}

// classCandidates returns the indices whose mutation falls in the given
// class, grouped by mutation value in order of each value's first
// occurrence. The grouping order matters: it fixes which index the
// location tie-break starts from.
func classCandidates(mutations []string, class []string) []int {
	inClass := make(map[string]struct{}, len(class))
	for _, c := range class {
		inClass[c] = struct{}{}
	}
	var out []int
	seen := make(map[string]struct{})
	for _, m := range mutations {
		if _, ok := inClass[m]; !ok {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		for i, other := range mutations {
			if other == m {
				out = append(out, i)
			}
		}
	}
	return out
}

// soonestLocation picks, within the candidate set, the index with the
// smallest parsed numeric location. A missing location always loses to
// a present one; if the running best starts missing, the first
// non-missing candidate replaces it. Ties keep the earliest index.
func soonestLocation(candidates []int, locations []string) int {
	best := candidates[0]
	bestNum, bestParsed := ParseLocation(locations[best])
	for _, i := range candidates {
		loc := locations[i]
		if loc == NoLocation {
			continue
		}
		if locations[best] == NoLocation {
			best = i
			bestNum, bestParsed = ParseLocation(loc)
			continue
		}
		num, parsed := ParseLocation(loc)
		if !parsed {
			continue
		}
		if !bestParsed || num < bestNum {
			best = i
			bestNum, bestParsed = num, true
		}
	}
	return best
}

// ParseLocation extracts the numeric position from a location string:
// the integer formed by the first maximal run of decimal digits.
// A digit-free string reports false.
func ParseLocation(location string) (int, bool) {
	num := 0
	found := false
	for _, r := range location {
		if r >= '0' && r <= '9' {
			num = num*10 + int(r-'0')
			found = true
		} else if found {
			break
		}
	}
	return num, found
}
