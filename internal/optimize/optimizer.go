package optimize

import (
	"math/rand"

	"github.com/scaledown-ai/scaledown/internal/errors"
	"github.com/scaledown-ai/scaledown/internal/guide"
)

// Result contains the outcome of one optimization.
// GuideName/GuideSource are empty and Tip is nil when no guide matched.
type Result struct {
	Original        string        `json:"original"`
	Optimized       string        `json:"optimized"`
	GuideName       string        `json:"guide_name,omitempty"`
	GuideSource     string        `json:"guide_source,omitempty"`
	Transformations []AppliedRule `json:"transformations"`
	Tip             *guide.Tip    `json:"tip,omitempty"`
	Stats           TokenStats    `json:"stats"`
}

// Optimizer resolves a guide for a model identifier and rewrites prompts
// with it. It holds no mutable state between calls and is safe for
// concurrent use.
type Optimizer struct {
	catalog *guide.Catalog
	counter TokenCounter
	rng     *rand.Rand
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithTokenCounter sets the token counter used for savings accounting.
// Without one, tokens are approximated by whitespace word count.
func WithTokenCounter(counter TokenCounter) Option {
	return func(o *Optimizer) {
		if counter != nil {
			o.counter = counter
		}
	}
}

// WithRand pins the random source used for tip selection, so tests can make
// the tip deterministic. Only the tip draw is randomized; the rewrite itself
// never is. Note a *rand.Rand is not safe for concurrent use; leave this
// unset for concurrent callers.
func WithRand(rng *rand.Rand) Option {
	return func(o *Optimizer) {
		o.rng = rng
	}
}

// New creates an optimizer over a catalog.
func New(catalog *guide.Catalog, opts ...Option) *Optimizer {
	o := &Optimizer{
		catalog: catalog,
		counter: CountTokens,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize rewrites prompt for the given model identifier.
//
// An identifier with no matching guide is not an error: the result carries
// the prompt unchanged, an empty trace, empty guide fields, a nil tip, and
// zero savings. Once resolution completes the rest of the pipeline cannot
// fail.
func (o *Optimizer) Optimize(model, prompt string) *Result {
	g := o.catalog.Resolve(model)
	return buildResult(g, prompt, o.counter, o.randomTip)
}

// randomTip draws one tip uniformly from the guide's tip list, nil when the
// list is empty.
func (o *Optimizer) randomTip(g *guide.Guide) *guide.Tip {
	return pickTip(g, o.rng)
}

func pickTip(g *guide.Guide, rng *rand.Rand) *guide.Tip {
	if g == nil || len(g.Tips) == 0 {
		return nil
	}
	var i int
	if rng != nil {
		i = rng.Intn(len(g.Tips))
	} else {
		i = rand.Intn(len(g.Tips))
	}
	tip := g.Tips[i]
	return &tip
}

// buildResult assembles a Result from an optional guide. All callers share
// the token-accounting behavior: saved tokens are before minus after, and
// the percentage guards the zero-token case.
func buildResult(g *guide.Guide, prompt string, counter TokenCounter, tipFn func(*guide.Guide) *guide.Tip) *Result {
	if counter == nil {
		counter = CountTokens
	}

	result := &Result{
		Original:  prompt,
		Optimized: prompt,
	}

	if g != nil {
		optimized, applied := Apply(g, prompt)
		result.Optimized = optimized
		result.Transformations = applied
		result.GuideName = g.Name
		result.GuideSource = g.Source
		result.Tip = tipFn(g)
	}

	result.Stats = TokenStats{
		Before: counter(result.Original),
		After:  counter(result.Optimized),
	}

	return result
}

// ModelOptimizer is the per-model facade: the model identifier and its token
// counter are bound at construction, for callers that carry a model-specific
// tokenizer rather than an identifier string per call.
type ModelOptimizer struct {
	model   string
	counter TokenCounter
	guide   *guide.Guide
	rng     *rand.Rand
}

// NewModelOptimizer binds an optimizer to one model. An empty model
// identifier is a configuration error, detected here and never retried.
func NewModelOptimizer(catalog *guide.Catalog, model string, counter TokenCounter, opts ...ModelOption) (*ModelOptimizer, error) {
	if model == "" {
		return nil, errors.NoModelSelected()
	}
	if counter == nil {
		counter = CountTokens
	}
	m := &ModelOptimizer{
		model:   model,
		counter: counter,
		guide:   catalog.Resolve(model),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ModelOption configures a ModelOptimizer.
type ModelOption func(*ModelOptimizer)

// WithModelRand pins the random source used for tip selection.
func WithModelRand(rng *rand.Rand) ModelOption {
	return func(m *ModelOptimizer) {
		m.rng = rng
	}
}

// Model returns the bound model identifier.
func (m *ModelOptimizer) Model() string {
	return m.model
}

// HasGuide reports whether a guide resolved for the bound model.
func (m *ModelOptimizer) HasGuide() bool {
	return m.guide != nil
}

// GuideInfo returns display metadata for the resolved guide, nil without one.
func (m *ModelOptimizer) GuideInfo() *guide.Info {
	if m.guide == nil {
		return nil
	}
	info := m.guide.Info()
	return &info
}

// RandomTip draws one tip from the resolved guide, nil without one.
func (m *ModelOptimizer) RandomTip() *guide.Tip {
	return pickTip(m.guide, m.rng)
}

// OptimizationDetails rewrites prompt with the bound model's guide, sourcing
// token counts from the bound counter. Guide-found and guide-absent branches
// match Optimizer.Optimize.
func (m *ModelOptimizer) OptimizationDetails(prompt string) *Result {
	return buildResult(m.guide, prompt, m.counter, func(g *guide.Guide) *guide.Tip {
		return pickTip(g, m.rng)
	})
}
