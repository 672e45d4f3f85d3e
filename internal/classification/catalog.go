// Package classification scores text against the slop pattern catalog and
// classifies the result under a sensitivity threshold.
package classification

import (
	"fmt"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
)

// Per-match weights for the built-in categories.
const (
	WeightTier1            = 3
	WeightTier2            = 2
	WeightTier3            = 1
	WeightEmoji            = 5
	WeightStopWords        = 3
	WeightEmDash           = 3
	WeightPolitical        = 5
	WeightYouTubeClickbait = 4
	WeightYouTubeLowEffort = 3
)

// BuiltinCategories returns the built-in categories in evaluation order.
func BuiltinCategories() []model.Category {
	return []model.Category{
		{
			Name:       model.CategoryTier1,
			Label:      "AI Slop",
			Weight:     WeightTier1,
			Activation: model.Activation{Kind: model.ActivationSensitivity, MinSensitivity: 1, Toggle: model.ToggleTier1},
		},
		{
			Name:       model.CategoryTier2,
			Label:      "Corporate Buzzwords",
			Weight:     WeightTier2,
			Activation: model.Activation{Kind: model.ActivationSensitivity, MinSensitivity: 3, Toggle: model.ToggleTier2},
		},
		{
			Name:       model.CategoryTier3,
			Label:      "Marketing Spam",
			Weight:     WeightTier3,
			Activation: model.Activation{Kind: model.ActivationSensitivity, MinSensitivity: 4, Toggle: model.ToggleTier3},
		},
		{
			Name:       model.CategoryEmoji,
			Label:      "Emoji Spam",
			Weight:     WeightEmoji,
			Activation: model.Activation{Kind: model.ActivationToggle, Toggle: model.ToggleEmojis},
		},
		{
			Name:       model.CategoryStopWords,
			Label:      "Engagement Openers",
			Weight:     WeightStopWords,
			Activation: model.Activation{Kind: model.ActivationToggle, Toggle: model.ToggleStopWords},
		},
		{
			Name:       model.CategoryEmDash,
			Label:      "Em Dashes",
			Weight:     WeightEmDash,
			Activation: model.Activation{Kind: model.ActivationToggle, Toggle: model.ToggleEmDashes},
		},
		{
			Name:       model.CategoryPolitical,
			Label:      "Political",
			Weight:     WeightPolitical,
			Activation: model.Activation{Kind: model.ActivationToggle, Toggle: model.TogglePolitical},
		},
		{
			Name:       model.CategoryYouTubeClickbait,
			Label:      "Clickbait",
			Weight:     WeightYouTubeClickbait,
			Activation: model.Activation{Kind: model.ActivationContext, Context: model.ContextYouTube},
		},
		{
			Name:       model.CategoryYouTubeLowEffort,
			Label:      "Low Effort",
			Weight:     WeightYouTubeLowEffort,
			Activation: model.Activation{Kind: model.ActivationContext, Context: model.ContextYouTube},
		},
	}
}

// CustomCategory describes user-defined rules. Each rule carries its own weight.
var CustomCategory = model.Category{
	Name:       model.CategoryCustom,
	Label:      "Custom",
	Activation: model.Activation{Kind: model.ActivationAlways},
}

func builtinLiterals(name model.CategoryName) []string {
	switch name {
	case model.CategoryTier1:
		return tier1Literals
	case model.CategoryTier2:
		return tier2Literals
	case model.CategoryTier3:
		return tier3Literals
	case model.CategoryEmoji:
		return emojiLiterals
	case model.CategoryStopWords:
		return stopWordLiterals
	case model.CategoryEmDash:
		return emDashLiterals
	case model.CategoryPolitical:
		return politicalLiterals
	case model.CategoryYouTubeClickbait:
		return youTubeClickbaitLiterals
	case model.CategoryYouTubeLowEffort:
		return youTubeLowEffortLiterals
	}
	return nil
}

// Entry is a category together with its compiled patterns.
type Entry struct {
	Patterns []pattern.Pattern
	model.Category
}

// CustomRule is a compiled user-defined pattern with its weight.
type CustomRule struct {
	Pattern pattern.Pattern
	Weight  int
}

// Rejection records an override entry that could not be used.
type Rejection struct {
	Err      error
	Literal  string
	Category model.CategoryName
}

// Catalog is an immutable set of categories and custom rules. Build a new one
// to change patterns; never modify a Catalog that has been published.
type Catalog struct {
	index    map[model.CategoryName]int
	entries  []Entry
	custom   []CustomRule
	rejected []Rejection
}

// DefaultCatalog returns the built-in catalog with no overrides.
func DefaultCatalog() *Catalog {
	return NewCatalog(Overrides{})
}

// NewCatalog builds a catalog from the built-in patterns with overrides applied.
// A non-nil tier list replaces that tier wholesale. Malformed entries are
// logged and dropped; the rest of the overrides still apply.
func NewCatalog(o Overrides) *Catalog {
	c := &Catalog{index: make(map[model.CategoryName]int)}

	for _, cat := range BuiltinCategories() {
		patterns := compileBuiltin(builtinLiterals(cat.Name))
		if replacement, ok := o.tier(cat.Name); ok {
			patterns = c.compileOverride(cat.Name, replacement)
		}
		c.index[cat.Name] = len(c.entries)
		c.entries = append(c.entries, Entry{Category: cat, Patterns: patterns})
	}

	for _, cp := range o.Custom {
		rule, err := CompileCustom(cp)
		if err != nil {
			c.reject(model.CategoryCustom, cp.Pattern, err)
			continue
		}
		c.custom = append(c.custom, rule)
	}

	return c
}

func (c *Catalog) compileOverride(name model.CategoryName, literals []string) []pattern.Pattern {
	patterns := make([]pattern.Pattern, 0, len(literals))
	for _, lit := range literals {
		p, err := pattern.Parse(lit)
		if err != nil {
			c.reject(name, lit, err)
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}

func (c *Catalog) reject(name model.CategoryName, literal string, err error) {
	logRejected(name, literal, err)
	c.rejected = append(c.rejected, Rejection{Category: name, Literal: literal, Err: err})
}

func logRejected(name model.CategoryName, literal string, err error) {
	common.LogWarn("Dropping invalid pattern", common.Fields{
		"category": string(name),
		"pattern":  literal,
		"error":    err.Error(),
	})
}

// CompileCustom validates and compiles one user-defined pattern.
func CompileCustom(cp model.CustomPattern) (CustomRule, error) {
	if err := cp.Validate(); err != nil {
		return CustomRule{}, err
	}
	p, err := pattern.Parse(cp.Pattern)
	if err != nil {
		return CustomRule{}, fmt.Errorf("custom pattern: %w", err)
	}
	return CustomRule{Pattern: p, Weight: cp.Weight}, nil
}

// Patterns returns a category's patterns in declaration order.
func (c *Catalog) Patterns(name model.CategoryName) []pattern.Pattern {
	if name == model.CategoryCustom {
		patterns := make([]pattern.Pattern, 0, len(c.custom))
		for _, rule := range c.custom {
			patterns = append(patterns, rule.Pattern)
		}
		return patterns
	}
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	return c.entries[i].Patterns
}

// Category looks up a category by name.
func (c *Catalog) Category(name model.CategoryName) (model.Category, bool) {
	if name == model.CategoryCustom {
		return CustomCategory, true
	}
	i, ok := c.index[name]
	if !ok {
		return model.Category{}, false
	}
	return c.entries[i].Category, true
}

// Entries returns the built-in categories with their patterns, in evaluation order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Custom returns the custom rules loaded from overrides.
func (c *Catalog) Custom() []CustomRule {
	return c.custom
}

// Rejected returns the override entries dropped while building the catalog.
func (c *Catalog) Rejected() []Rejection {
	return c.rejected
}

// PatternCount returns the number of patterns across all categories.
func (c *Catalog) PatternCount() int {
	n := len(c.custom)
	for _, e := range c.entries {
		n += len(e.Patterns)
	}
	return n
}

// rule is one pattern ready for evaluation.
type rule struct {
	pattern  pattern.Pattern
	category model.CategoryName
	weight   int
}

// rules returns every pattern active under cfg in evaluation order, followed by
// the catalog's custom rules and then extra.
func (c *Catalog) rules(cfg model.Configuration, extra []CustomRule) []rule {
	var out []rule
	for _, e := range c.entries {
		if !e.IsActive(cfg) {
			continue
		}
		for _, p := range e.Patterns {
			out = append(out, rule{pattern: p, category: e.Name, weight: e.Weight})
		}
	}
	for _, group := range [][]CustomRule{c.custom, extra} {
		for _, cr := range group {
			out = append(out, rule{pattern: cr.Pattern, category: model.CategoryCustom, weight: cr.Weight})
		}
	}
	return out
}
