package mutation

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Classes holds the ordered mutation-type label sets for one cancer
// type. Truncating outranks missense; noncoding, when present, is
// checked only after both come up empty.
type Classes struct {
	Truncating []string `yaml:"truncating" json:"truncating"`
	Missense   []string `yaml:"missense" json:"missense"`
	Noncoding  []string `yaml:"noncoding,omitempty" json:"noncoding,omitempty"`
}

// ClassConfig maps cancer types to their mutation class label sets.
// It is injected into the Prioritizer at construction, so adding a
// cancer type is a data addition, not a code change.
type ClassConfig struct {
	// Default applies to any cancer type without its own entry.
	Default Classes `yaml:"default" json:"default"`

	// CancerTypes holds per-cancer-type overrides, keyed lowercase.
	CancerTypes map[string]Classes `yaml:"cancer_types" json:"cancer_types"`

	// Silent lists the mutation types treated as silent/synonymous,
	// the lowest rung of the default hierarchy.
	Silent []string `yaml:"silent" json:"silent"`
}

// classConfigSchema is the CUE schema every ClassConfig must satisfy.
const classConfigSchema = `
#Classes: {
	truncating: [string, ...string]
	missense:   [string, ...string]
	noncoding?: [...string]
}

#Config: {
	default: #Classes
	cancer_types: {[string]: #Classes}
	silent: [string, ...string]
}
`

// DefaultClassConfig returns the built-in configuration covering the
// colon, hnscc, and gbm datasets plus the MAF-style default.
func DefaultClassConfig() ClassConfig {
	return ClassConfig{
		Default: Classes{
			Truncating: []string{"Frame_Shift_Del", "Frame_Shift_Ins", "Nonsense_Mutation", "Nonstop_Mutation", "Splice_Site"},
			Missense:   []string{"In_Frame_Del", "In_Frame_Ins", "Missense_Mutation"},
		},
		CancerTypes: map[string]Classes{
			"colon": {
				Truncating: []string{"frameshift deletion", "frameshift insertion", "frameshift substitution", "stopgain", "stoploss"},
				Missense:   []string{"nonframeshift deletion", "nonframeshift insertion", "nonframeshift substitution", "nonsynonymous SNV"},
			},
			"hnscc": {
				Truncating: []string{"stopgain", "stoploss"},
				Missense:   []string{"nonframeshift insertion", "nonframeshift deletion"},
			},
			"gbm": {
				Truncating: []string{"Frame_Shift_Del", "Frame_Shift_Ins", "Nonsense_Mutation", "Nonstop_Mutation", "Splice_Site"},
				Missense:   []string{"In_Frame_Del", "In_Frame_Ins", "Missense_Mutation"},
				Noncoding:  []string{"Intron", "RNA", "3'Flank", "Splice_Region", "5'UTR", "5'Flank", "3'UTR"},
			},
		},
		Silent: []string{"Silent", "synonymous SNV"},
	}
}

// Validate checks the configuration against the CUE schema.
func (c ClassConfig) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(classConfigSchema)
	if err := schema.Err(); err != nil {
		return newConfigErrorf("schema compile failed: %v", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return newConfigErrorf("schema missing #Config: %v", err)
	}

	val := ctx.Encode(c)
	if err := val.Err(); err != nil {
		return newConfigErrorf("cannot encode config: %v", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return newConfigErrorf("%v", err)
	}
	return nil
}

// ForCancerType returns the class label sets for a cancer type,
// falling back to Default when the type has no entry. Lookup is
// case-insensitive.
func (c ClassConfig) ForCancerType(cancerType string) Classes {
	if classes, ok := c.CancerTypes[strings.ToLower(cancerType)]; ok {
		return classes
	}
	return c.Default
}

// LoadClassConfig reads a YAML class configuration from path and
// validates it against the CUE schema.
func LoadClassConfig(path string) (ClassConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ClassConfig{}, fmt.Errorf("read class config: %w", err)
	}
	return ParseClassConfig(raw)
}

// ParseClassConfig decodes and validates a YAML class configuration.
func ParseClassConfig(raw []byte) (ClassConfig, error) {
	var cfg ClassConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return ClassConfig{}, newConfigErrorf("yaml decode failed: %v", err)
	}
	if cfg.CancerTypes == nil {
		cfg.CancerTypes = map[string]Classes{}
	}
	if err := cfg.Validate(); err != nil {
		return ClassConfig{}, err
	}
	return cfg, nil
}
