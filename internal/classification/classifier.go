package classification

import (
	"sync"
	"sync/atomic"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/suggestion"
)

// compiledCustom caches the result of compiling a configuration-supplied pattern.
type compiledCustom struct {
	err  error
	rule CustomRule
}

// Classifier scores and classifies text. It is safe for concurrent use; the
// catalog is swapped atomically when custom patterns are loaded.
type Classifier struct {
	catalog atomic.Pointer[Catalog]
	custom  sync.Map // model.CustomPattern -> compiledCustom
}

// New creates a classifier over the built-in catalog.
func New() *Classifier {
	return NewWithCatalog(DefaultCatalog())
}

// NewWithCatalog creates a classifier over a prepared catalog.
func NewWithCatalog(catalog *Catalog) *Classifier {
	c := &Classifier{}
	c.catalog.Store(catalog)
	return c
}

// Catalog returns the catalog currently in use.
func (c *Classifier) Catalog() *Catalog {
	return c.catalog.Load()
}

// LoadCustomPatterns rebuilds the catalog from the built-in patterns and o, then
// publishes it. Malformed entries are dropped; see Catalog.Rejected.
func (c *Classifier) LoadCustomPatterns(o Overrides) *Catalog {
	catalog := NewCatalog(o)
	c.catalog.Store(catalog)
	return catalog
}

// Score computes the weighted score of text under cfg.
func (c *Classifier) Score(text string, cfg model.Configuration) model.ScoreResult {
	return score(c.Catalog().rules(cfg, c.configRules(cfg)), text)
}

// Classify maps a score to a classification at the given sensitivity.
func (c *Classifier) Classify(score, sensitivity int) model.Classification {
	return Classify(score, Threshold(sensitivity))
}

// Evaluate scores text and classifies it under cfg's sensitivity.
func (c *Classifier) Evaluate(text string, cfg model.Configuration) (model.ScoreResult, model.Classification) {
	result := c.Score(text, cfg)
	return result, c.Classify(result.Total, cfg.EffectiveSensitivity())
}

// ResolveHighlightSpans returns non-overlapping matches in text order.
// It does not affect scoring.
func (c *Classifier) ResolveHighlightSpans(text string, cfg model.Configuration) []model.Match {
	return resolve(c.Catalog().rules(cfg, c.configRules(cfg)), text)
}

// Suggest returns an improvement suggestion for a matched phrase.
func (c *Classifier) Suggest(phrase string, category model.CategoryName) string {
	return suggestion.Suggest(phrase, category)
}

// configRules compiles cfg's custom patterns, skipping invalid ones.
func (c *Classifier) configRules(cfg model.Configuration) []CustomRule {
	if len(cfg.CustomPatterns) == 0 {
		return nil
	}

	rules := make([]CustomRule, 0, len(cfg.CustomPatterns))
	for _, cp := range cfg.CustomPatterns {
		cached, ok := c.custom.Load(cp)
		if !ok {
			rule, err := CompileCustom(cp)
			if err != nil {
				logRejected(model.CategoryCustom, cp.Pattern, err)
			}
			cached, _ = c.custom.LoadOrStore(cp, compiledCustom{rule: rule, err: err})
		}
		entry := cached.(compiledCustom)
		if entry.err != nil {
			continue
		}
		rules = append(rules, entry.rule)
	}
	return rules
}
