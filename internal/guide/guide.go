// Package guide holds model-specific prompting guides and resolves model
// identifiers to them.
package guide

import "regexp"

// Example is a before/after pair illustrating a tip.
type Example struct {
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Tip is an informational prompting tip. Tips never alter optimization
// behavior; one is picked at random to accompany a result.
type Tip struct {
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Example     Example `json:"example" yaml:"example"`
}

// Rule is an ordered rewrite: all matches of Pattern are replaced with
// Replacement. Replacement may reference capture groups ($1, $2, ...).
// Later rules in a guide see the output of earlier rules.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Guide is a named collection of tips and ordered rewrite rules for one model
// provider/family. Guides are built once at catalog construction and never
// mutated, so they are safe to share across concurrent callers.
type Guide struct {
	Name   string
	Source string
	URL    string
	Tips   []Tip
	Rules  []Rule
}

// Info summarizes a guide for display.
type Info struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	TipCount int    `json:"tip_count"`
}

// Info returns display metadata for the guide.
func (g *Guide) Info() Info {
	return Info{
		Name:     g.Name,
		Source:   g.Source,
		URL:      g.URL,
		TipCount: len(g.Tips),
	}
}

// Alias maps a concrete model name to a guide key. Aliases are kept in
// registration order: the prefix-match tier of resolution favors
// earlier-registered aliases, so more specific aliases must be registered
// before more general ones.
type Alias struct {
	Model    string
	GuideKey string
}
