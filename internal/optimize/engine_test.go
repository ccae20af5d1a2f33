package optimize

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaledown-ai/scaledown/internal/guide"
)

func rules(pairs ...[2]string) []guide.Rule {
	var rs []guide.Rule
	for _, p := range pairs {
		rs = append(rs, guide.Rule{Pattern: regexp.MustCompile(p[0]), Replacement: p[1]})
	}
	return rs
}

func TestApply_StripsFillerAndRecordsTrace(t *testing.T) {
	g := &guide.Guide{Rules: rules(
		[2]string{`Could you please\s+`, ""},
		[2]string{`kindly\s+`, ""},
	)}

	optimized, applied := Apply(g, "Could you please kindly help me")

	assert.Equal(t, "help me", optimized)
	require.Len(t, applied, 2)

	assert.Equal(t, `Could you please\s+`, applied[0].Pattern)
	assert.Equal(t, "Could you please kindly help me", applied[0].Before)
	assert.Equal(t, "kindly help me", applied[0].After)

	assert.Equal(t, `kindly\s+`, applied[1].Pattern)
	assert.Equal(t, "kindly help me", applied[1].Before)
	assert.Equal(t, "help me", applied[1].After)
}

func TestApply_RulesCompose(t *testing.T) {
	// The second rule sees the first rule's output.
	g := &guide.Guide{Rules: rules(
		[2]string{`Could you please\s+`, "kindly "},
		[2]string{`kindly\s+`, ""},
	)}

	optimized, applied := Apply(g, "Could you please help")

	assert.Equal(t, "help", optimized)
	assert.Len(t, applied, 2)
}

func TestApply_SingleForwardPass(t *testing.T) {
	// Rule order: B before A. A's output would newly match B, but B is
	// never revisited: no fixed-point iteration.
	g := &guide.Guide{Rules: rules(
		[2]string{`foo`, ""},
		[2]string{`bar`, "foo"},
	)}

	optimized, applied := Apply(g, "bar")

	assert.Equal(t, "foo", optimized)
	require.Len(t, applied, 1)
	assert.Equal(t, `bar`, applied[0].Pattern)
}

func TestApply_NoOpMatchNotRecorded(t *testing.T) {
	// The pattern matches structurally but substitution yields identical
	// text; text equality, not match detection, decides the trace.
	g := &guide.Guide{Rules: rules([2]string{`help`, "help"})}

	optimized, applied := Apply(g, "help me")

	assert.Equal(t, "help me", optimized)
	assert.Empty(t, applied)
}

func TestApply_ReplacesAllOccurrences(t *testing.T) {
	g := &guide.Guide{Rules: rules([2]string{`Please\s+`, ""})}

	optimized, applied := Apply(g, "Please do this. Please do that.")

	assert.Equal(t, "do this. do that.", optimized)
	assert.Len(t, applied, 1)
}

func TestApply_CaptureGroups(t *testing.T) {
	g := &guide.Guide{Rules: rules([2]string{`I want you to (\w+)`, "$1"})}

	optimized, _ := Apply(g, "I want you to summarize the report")

	assert.Equal(t, "summarize the report", optimized)
}

func TestApply_Deterministic(t *testing.T) {
	g := &guide.Guide{Rules: rules(
		[2]string{`Could you please\s+`, ""},
		[2]string{`kindly\s+`, ""},
		[2]string{`\s+if possible`, ""},
	)}
	input := "Could you please kindly review this if possible"

	first, firstTrace := Apply(g, input)
	second, secondTrace := Apply(g, input)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTrace, secondTrace)
}

func TestApply_NoRules(t *testing.T) {
	g := &guide.Guide{}

	optimized, applied := Apply(g, "unchanged")

	assert.Equal(t, "unchanged", optimized)
	assert.Empty(t, applied)
}
