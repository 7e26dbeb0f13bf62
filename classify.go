package preciossuperpy

import (
	"github.com/BurntSushi/toml"
)

// SubgroupRule maps a phrase pattern to a subgroup label. An empty pattern is
// a catch-all: it matches any non-empty name.
type SubgroupRule struct {
	Pattern string `toml:"pattern"`
	Label   string `toml:"label"`
}

// Category is one tier of the classification cascade. Order matters: the
// first category whose exclude patterns do not match and whose include
// patterns do, wins.
type Category struct {
	Name      string         `toml:"name"`
	Include   []string       `toml:"include"`
	Exclude   []string       `toml:"exclude"`
	Subgroups []SubgroupRule `toml:"subgroups"`
}

// Ruleset is the immutable configuration of a Classifier.
type Ruleset struct {
	Exclusions []string   `toml:"exclusions"`
	Categories []Category `toml:"categories"`
}

// LoadRuleset reads a ruleset from a TOML file.
func LoadRuleset(path string) (Ruleset, error) {
	var rs Ruleset
	_, err := toml.DecodeFile(path, &rs)
	return rs, err
}

type compiledSubgroup struct {
	phrase []string // nil for the catch-all
	label  string
}

type compiledCategory struct {
	name      string
	include   [][]string
	exclude   [][]string
	subgroups []compiledSubgroup
}

// Classifier assigns a category and subgroup to product names, and filters
// names carrying an excluded token. Patterns match on normalized tokens, so
// "pan" matches "PAN FRANCES" but not "EMPANADA".
type Classifier struct {
	exclusions map[string]bool
	categories []compiledCategory
}

func NewClassifier(rs Ruleset) *Classifier {
	c := &Classifier{exclusions: make(map[string]bool, len(rs.Exclusions))}

	for _, token := range rs.Exclusions {
		c.exclusions[Normalize(token)] = true
	}

	for _, cat := range rs.Categories {
		compiled := compiledCategory{name: cat.Name}
		for _, p := range cat.Include {
			compiled.include = append(compiled.include, Tokenize(p))
		}
		for _, p := range cat.Exclude {
			compiled.exclude = append(compiled.exclude, Tokenize(p))
		}
		for _, s := range cat.Subgroups {
			compiled.subgroups = append(compiled.subgroups, compiledSubgroup{
				phrase: Tokenize(s.Pattern),
				label:  s.Label,
			})
		}
		c.categories = append(c.categories, compiled)
	}
	return c
}

// Excluded reports whether any token of the name is in the exclusion
// vocabulary. Excluded names are dropped before classification.
func (c *Classifier) Excluded(name string) bool {
	for _, token := range Tokenize(name) {
		if c.exclusions[token] {
			return true
		}
	}
	return false
}

// Group returns the first matching category for the name.
func (c *Classifier) Group(name string) (string, bool) {
	tokens := Tokenize(name)

	for _, cat := range c.categories {
		if matchesAny(tokens, cat.exclude) {
			continue
		}
		if matchesAny(tokens, cat.include) {
			return cat.name, true
		}
	}
	return "", false
}

// Subgroup returns the subgroup of the name within a group, first match wins.
func (c *Classifier) Subgroup(name, group string) (string, bool) {
	tokens := Tokenize(name)

	for _, cat := range c.categories {
		if cat.name != group {
			continue
		}
		for _, s := range cat.subgroups {
			if len(s.phrase) == 0 {
				if len(tokens) > 0 {
					return s.label, true
				}
				continue
			}
			if containsPhrase(tokens, s.phrase) {
				return s.label, true
			}
		}
	}
	return "", false
}

func matchesAny(tokens []string, phrases [][]string) bool {
	for _, p := range phrases {
		if containsPhrase(tokens, p) {
			return true
		}
	}
	return false
}

func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, w := range phrase {
			if tokens[i+j] != w {
				continue outer
			}
		}
		return true
	}
	return false
}
