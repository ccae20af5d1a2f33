package guide

import "strings"

// Catalog is the process-wide set of guides plus the model-alias table.
// Build it once at startup; it is read-only afterwards, so concurrent
// resolution needs no locking.
type Catalog struct {
	guides     map[string]*Guide
	keys       []string // provider keys in registration order
	aliases    []Alias  // registration order is the prefix tie-break
	aliasIndex map[string]string
}

// Default returns a catalog holding only the built-in guides.
func Default() *Catalog {
	c := &Catalog{
		guides:     make(map[string]*Guide),
		aliasIndex: make(map[string]string),
	}
	for _, key := range builtinKeys {
		c.addGuide(key, builtinGuides[key])
	}
	for _, a := range builtinAliases {
		c.addAlias(a.Model, a.GuideKey)
	}
	return c
}

// addGuide registers a guide under a lowercase provider key. Registering an
// existing key replaces the guide but keeps its position in key order.
func (c *Catalog) addGuide(key string, g *Guide) {
	key = strings.ToLower(key)
	if _, exists := c.guides[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.guides[key] = g
}

// addAlias appends a model-name alias. Aliases registered earlier win
// prefix-match ties, so specific names belong before general ones.
// Re-registering an existing alias is a no-op: the first registration wins
// in the exact tier and the prefix tier alike, so user guide files cannot
// reclaim a builtin model name.
func (c *Catalog) addAlias(model, guideKey string) {
	model = strings.ToLower(model)
	if _, exists := c.aliasIndex[model]; exists {
		return
	}
	guideKey = strings.ToLower(guideKey)
	c.aliases = append(c.aliases, Alias{Model: model, GuideKey: guideKey})
	c.aliasIndex[model] = guideKey
}

// Get returns the guide registered under a provider key, or nil.
// Lookup is case-insensitive; equivalent keys return the identical instance.
func (c *Catalog) Get(key string) *Guide {
	return c.guides[strings.ToLower(key)]
}

// Resolve maps a free-form model identifier to a guide, or nil when no guide
// matches. Matching tiers, first match wins:
//
//  1. the lowercased identifier is itself a provider key
//  2. the identifier is an exact entry in the model-alias table
//  3. the first registered alias that is a prefix of the identifier
//
// A missing guide is a normal outcome, not an error: callers degrade to an
// identity transformation.
func (c *Catalog) Resolve(model string) *Guide {
	key := strings.ToLower(model)

	if g, ok := c.guides[key]; ok {
		return g
	}

	if guideKey, ok := c.aliasIndex[key]; ok {
		return c.guides[guideKey]
	}

	// The empty identifier never reaches here usefully: no alias is a
	// prefix of "".
	for _, a := range c.aliases {
		if a.Model != "" && strings.HasPrefix(key, a.Model) {
			return c.guides[a.GuideKey]
		}
	}

	return nil
}

// Keys returns provider keys in registration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Aliases returns the model-alias table in registration order.
func (c *Catalog) Aliases() []Alias {
	aliases := make([]Alias, len(c.aliases))
	copy(aliases, c.aliases)
	return aliases
}

// Count returns the number of distinct provider keys.
func (c *Catalog) Count() int {
	return len(c.keys)
}
