// Package dictionary holds session entity knowledge that supplements fuzzy
// matching: regex correction rules for recurring misspellings and synonym
// expansions for known entities. Dictionaries are optional; resolvers work
// without one.
package dictionary

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Correction rewrites a recurring misspelling before fuzzy matching runs.
// Pattern is a regular expression applied case-insensitively.
type Correction struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`

	re *regexp.Regexp
}

// Dictionary bundles synonym expansions and ordered correction rules.
//
// Synonyms map a canonical identifier to alternate spellings users produce
// for it. During candidate expansion every synonym resolves back to its
// canonical form, so a fuzzy hit on "administrator" still suggests "Admin".
type Dictionary struct {
	Synonyms    map[string][]string `yaml:"synonyms"`
	Corrections []Correction        `yaml:"corrections"`
}

// New compiles a dictionary from literal values. Invalid correction
// patterns are reported, not deferred to match time.
func New(synonyms map[string][]string, corrections []Correction) (*Dictionary, error) {
	d := &Dictionary{Synonyms: synonyms, Corrections: corrections}
	if err := d.compile(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load parses a YAML dictionary document and compiles its correction rules.
func Load(data []byte) (*Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	if err := d.compile(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads and parses a YAML dictionary file.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary file: %w", err)
	}
	return Load(data)
}

func (d *Dictionary) compile() error {
	for i := range d.Corrections {
		re, err := regexp.Compile("(?i)" + d.Corrections[i].Pattern)
		if err != nil {
			return fmt.Errorf("compile correction pattern %q: %w", d.Corrections[i].Pattern, err)
		}
		d.Corrections[i].re = re
	}
	return nil
}

// Apply runs every correction rule over the text in declaration order and
// returns the rewritten result.
func (d *Dictionary) Apply(text string) string {
	if d == nil {
		return text
	}
	for _, c := range d.Corrections {
		if c.re == nil {
			continue
		}
		text = c.re.ReplaceAllString(text, c.Replacement)
	}
	return text
}

// Expand widens a fuzzy-match candidate pool with synonym forms. The second
// return value maps every pool entry (candidates and synonyms alike) back to
// the candidate it stands for, so a synonym hit can be reported as its
// canonical identifier.
func (d *Dictionary) Expand(candidates []string) ([]string, map[string]string) {
	pool := make([]string, 0, len(candidates))
	canonical := make(map[string]string, len(candidates))
	for _, c := range candidates {
		pool = append(pool, c)
		canonical[c] = c
		if d == nil {
			continue
		}
		for _, syn := range d.Synonyms[c] {
			if _, seen := canonical[syn]; seen {
				continue
			}
			pool = append(pool, syn)
			canonical[syn] = c
		}
	}
	return pool, canonical
}
