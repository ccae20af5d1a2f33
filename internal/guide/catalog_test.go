package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltinGuides(t *testing.T) {
	c := Default()

	assert.Equal(t, 4, c.Count())
	require.NotNil(t, c.Get("llama"))
	require.NotNil(t, c.Get("claude"))
	require.NotNil(t, c.Get("gpt"))
	require.NotNil(t, c.Get("openai"))

	assert.Equal(t, "Llama", c.Get("llama").Name)
	assert.Equal(t, "Meta AI", c.Get("llama").Source)
}

func TestGet_CaseInsensitiveSameInstance(t *testing.T) {
	c := Default()

	// Equivalent keys return the identical guide instance, not copies.
	assert.Same(t, c.Get("gpt"), c.Get("GPT"))
	assert.Same(t, c.Get("gpt"), c.Get("openai"))
	assert.Same(t, c.Get("gpt"), c.Get("OpenAI"))
}

func TestResolve_DirectKey(t *testing.T) {
	c := Default()

	assert.Same(t, c.Get("claude"), c.Resolve("claude"))
	assert.Same(t, c.Get("claude"), c.Resolve("CLAUDE"))
	assert.Same(t, c.Get("gpt"), c.Resolve("OpenAI"))
}

func TestResolve_AliasMatch(t *testing.T) {
	tests := []struct {
		model string
		guide string
	}{
		{"llama-3-70b", "Llama"},
		{"LLAMA-3-70B", "Llama"},
		{"claude-3-opus", "Claude"},
		{"gpt-4o", "GPT"},
		{"gpt-3.5-turbo", "GPT"},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			g := c.Resolve(tt.model)
			require.NotNil(t, g)
			assert.Equal(t, tt.guide, g.Name)
		})
	}
}

func TestResolve_PrefixMatch(t *testing.T) {
	c := Default()

	// "gpt-4o-mini-unknown" is not a key or alias, but "gpt-4" prefixes it.
	g := c.Resolve("gpt-4o-mini-unknown")
	require.NotNil(t, g)
	assert.Equal(t, "GPT", g.Name)

	g = c.Resolve("llama-3-70b-instruct")
	require.NotNil(t, g)
	assert.Equal(t, "Llama", g.Name)
}

func TestResolve_NoMatch(t *testing.T) {
	c := Default()

	assert.Nil(t, c.Resolve("mistral-7b"))
	assert.Nil(t, c.Resolve("gemini-1.5-pro"))
	// No alias is a prefix of the empty string, nor is it a key.
	assert.Nil(t, c.Resolve(""))
}

func TestResolve_DirectKeyBeatsAlias(t *testing.T) {
	// A colliding alias mapped to a different guide must lose to the
	// direct catalog key.
	c := Default()
	c.addAlias("gpt", "llama")

	g := c.Resolve("gpt")
	require.NotNil(t, g)
	assert.Equal(t, "GPT", g.Name)
}

func TestResolve_PrefixTieBreakIsRegistrationOrder(t *testing.T) {
	c := &Catalog{
		guides:     make(map[string]*Guide),
		aliasIndex: make(map[string]string),
	}
	first := &Guide{Name: "First"}
	second := &Guide{Name: "Second"}
	c.addGuide("first", first)
	c.addGuide("second", second)

	// Both aliases prefix "model-x-large"; the earlier registration wins.
	c.addAlias("model-x", "first")
	c.addAlias("model", "second")

	g := c.Resolve("model-x-large")
	require.NotNil(t, g)
	assert.Equal(t, "First", g.Name)

	// A name only the shorter alias prefixes still reaches it.
	g = c.Resolve("model-y")
	require.NotNil(t, g)
	assert.Equal(t, "Second", g.Name)
}

func TestAddAlias_DuplicateRegistrationIsFirstWins(t *testing.T) {
	c := Default()

	// A later registration of an existing alias changes nothing: the
	// exact tier and the prefix tier must keep agreeing.
	c.addAlias("gpt-4", "llama")

	g := c.Resolve("gpt-4")
	require.NotNil(t, g)
	assert.Equal(t, "GPT", g.Name)

	g = c.Resolve("gpt-4-custom-variant")
	require.NotNil(t, g)
	assert.Equal(t, "GPT", g.Name)

	// The ordered table holds a single entry for the alias.
	count := 0
	for _, a := range c.Aliases() {
		if a.Model == "gpt-4" {
			count++
			assert.Equal(t, "gpt", a.GuideKey)
		}
	}
	assert.Equal(t, 1, count)
}

func TestAliases_ReturnsCopyInOrder(t *testing.T) {
	c := Default()

	aliases := c.Aliases()
	require.NotEmpty(t, aliases)
	assert.Equal(t, "llama-2", aliases[0].Model)

	// Mutating the returned slice must not affect resolution order.
	aliases[0] = Alias{Model: "gpt-zzz", GuideKey: "gpt"}
	assert.Equal(t, "llama-2", c.Aliases()[0].Model)
}

func TestKeys_RegistrationOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"llama", "claude", "gpt", "openai"}, c.Keys())
}
