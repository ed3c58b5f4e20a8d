package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrioritizer(t *testing.T, cancerType string) *Prioritizer {
	t.Helper()
	p, err := NewPrioritizer(DefaultClassConfig(), cancerType)
	require.NoError(t, err)
	return p
}

// TestParseLocation tests numeric extraction from location strings: the
// first maximal digit run wins, and digit-free strings report false.
func TestParseLocation(t *testing.T) {
	tests := []struct {
		location string
		want     int
		parsed   bool
	}{
		{"p.R273H", 273, true},
		{"c.1234_1235del", 1234, true},
		{"p.3", 3, true},
		{"12", 12, true},
		{"splice", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			num, parsed := ParseLocation(tt.location)
			assert.Equal(t, tt.parsed, parsed)
			assert.Equal(t, tt.want, num)
		})
	}
}

// TestChoose_DefaultHierarchy tests the class hierarchy with an empty
// filter: truncating beats missense beats silent.
func TestChoose_DefaultHierarchy(t *testing.T) {
	p := newTestPrioritizer(t, "colon")

	tests := []struct {
		name      string
		mutations []string
		locations []string
		wantMut   string
		wantLoc   string
	}{
		{
			name:      "truncating over missense",
			mutations: []string{"nonsynonymous SNV", "frameshift deletion"},
			locations: []string{"p.A100V", "p.3"},
			wantMut:   "frameshift deletion",
			wantLoc:   "p.3",
		},
		{
			name:      "missense over silent",
			mutations: []string{"synonymous SNV", "nonsynonymous SNV"},
			locations: []string{"p.1", "p.900"},
			wantMut:   "nonsynonymous SNV",
			wantLoc:   "p.900",
		},
		{
			name:      "silent only",
			mutations: []string{"synonymous SNV"},
			locations: []string{"p.42"},
			wantMut:   "synonymous SNV",
			wantLoc:   "p.42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mut, loc, unknown := p.Choose(nil, tt.mutations, tt.locations)
			assert.Equal(t, tt.wantMut, mut)
			assert.Equal(t, tt.wantLoc, loc)
			assert.Empty(t, unknown)
		})
	}
}

// TestChoose_FilterOutranksClasses tests that a matched filter token
// wins even against a higher mutation class.
func TestChoose_FilterOutranksClasses(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	mut, loc, unknown := p.Choose(
		[]string{"Missense_Mutation"},
		[]string{"Nonsense_Mutation", "Missense_Mutation"},
		[]string{"p.10", "p.500"},
	)
	assert.Equal(t, "Missense_Mutation", mut)
	assert.Equal(t, "p.500", loc)
	assert.Empty(t, unknown)
}

// TestChoose_FilterMatchesLocation tests the location fallback for a
// filter token that names no mutation type.
func TestChoose_FilterMatchesLocation(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	mut, loc, _ := p.Choose(
		[]string{"p.500"},
		[]string{"Nonsense_Mutation", "Silent"},
		[]string{"p.10", "p.500"},
	)
	assert.Equal(t, "Silent", mut)
	assert.Equal(t, "p.500", loc)
}

// TestChoose_FilterTokenOrder tests that earlier filter tokens outrank
// later ones, and unmatched tokens are skipped.
func TestChoose_FilterTokenOrder(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	mut, _, _ := p.Choose(
		[]string{"Frame_Shift_Ins", "Silent", "Nonsense_Mutation"},
		[]string{"Nonsense_Mutation", "Silent"},
		[]string{"p.10", "p.500"},
	)
	assert.Equal(t, "Silent", mut)
}

// TestChoose_LocationTieBreak tests that within one class the smallest
// parsed location wins, missing locations always lose to present ones,
// and digit-free locations rank below numeric ones.
func TestChoose_LocationTieBreak(t *testing.T) {
	p := newTestPrioritizer(t, "brca")

	tests := []struct {
		name      string
		mutations []string
		locations []string
		wantLoc   string
	}{
		{
			name:      "smallest number wins",
			mutations: []string{"Nonsense_Mutation", "Nonsense_Mutation"},
			locations: []string{"p.900", "p.45"},
			wantLoc:   "p.45",
		},
		{
			name:      "missing loses to present",
			mutations: []string{"Nonsense_Mutation", "Nonsense_Mutation"},
			locations: []string{NoLocation, "p.900"},
			wantLoc:   "p.900",
		},
		{
			name:      "digit-free loses to numeric",
			mutations: []string{"Nonsense_Mutation", "Nonsense_Mutation"},
			locations: []string{"splice", "p.900"},
			wantLoc:   "p.900",
		},
		{
			name:      "tie keeps earliest",
			mutations: []string{"Nonsense_Mutation", "Nonsense_Mutation"},
			locations: []string{"p.45", "p.45_46"},
			wantLoc:   "p.45",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, loc, _ := p.Choose(nil, tt.mutations, tt.locations)
			assert.Equal(t, tt.wantLoc, loc)
		})
	}
}

// TestChoose_NoncodingClass tests that gbm checks its noncoding class
// after truncating and missense, while cancer types without one treat
// the same labels as unknown.
func TestChoose_NoncodingClass(t *testing.T) {
	mutations := []string{"Silent", "Intron"}
	locations := []string{"p.5", "p.80"}

	gbm := newTestPrioritizer(t, "gbm")
	mut, loc, unknown := gbm.Choose(nil, mutations, locations)
	assert.Equal(t, "Intron", mut)
	assert.Equal(t, "p.80", loc)
	assert.Empty(t, unknown)

	brca := newTestPrioritizer(t, "brca")
	mut, loc, unknown = brca.Choose(nil, mutations, locations)
	assert.Equal(t, []string{"Intron"}, unknown)
	// Lowest rung: location alone decides between Silent and Intron.
	assert.Equal(t, "Silent", mut)
	assert.Equal(t, "p.5", loc)
}

// TestChoose_Deterministic tests that repeated calls with identical
// input always pick the same record.
func TestChoose_Deterministic(t *testing.T) {
	p := newTestPrioritizer(t, "colon")
	mutations := []string{"stopgain", "frameshift deletion", "stopgain"}
	locations := []string{"p.70", "p.70_71", "p.12"}

	firstMut, firstLoc, _ := p.Choose(nil, mutations, locations)
	for i := 0; i < 50; i++ {
		mut, loc, _ := p.Choose(nil, mutations, locations)
		require.Equal(t, firstMut, mut)
		require.Equal(t, firstLoc, loc)
	}
}

// TestNewPrioritizer_RejectsInvalidConfig tests that configuration
// violating the schema fails construction.
func TestNewPrioritizer_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultClassConfig()
	cfg.Default.Truncating = nil

	_, err := NewPrioritizer(cfg, "brca")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}
