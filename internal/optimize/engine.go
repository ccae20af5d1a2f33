package optimize

import "github.com/scaledown-ai/scaledown/internal/guide"

// AppliedRule records one rule that produced an observable text change,
// with snapshots of the text before and after that step.
type AppliedRule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Before      string `json:"before"`
	After       string `json:"after"`
}

// Apply runs a guide's rules over text in a single forward pass and returns
// the rewritten text plus the trace of rules that changed it.
//
// Rules compose: each rule sees the output of the previous one, and a later
// rule never re-triggers an earlier one even if its output would newly match
// (no fixed-point iteration). A rule whose pattern matches but whose
// substitution leaves the text identical is skipped from the trace; the
// before/after equality check, not match detection, decides recording.
// Given the same guide and text the output and trace are deterministic.
func Apply(g *guide.Guide, text string) (string, []AppliedRule) {
	optimized := text
	var applied []AppliedRule

	for _, rule := range g.Rules {
		if !rule.Pattern.MatchString(optimized) {
			continue
		}

		before := optimized
		optimized = rule.Pattern.ReplaceAllString(optimized, rule.Replacement)

		if before != optimized {
			applied = append(applied, AppliedRule{
				Pattern:     rule.Pattern.String(),
				Replacement: rule.Replacement,
				Before:      before,
				After:       optimized,
			})
		}
	}

	return optimized, applied
}
