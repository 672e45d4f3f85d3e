// Package model defines the core data types for slop classification.
package model

// CategoryName identifies a group of patterns that share a weight and an activation rule.
type CategoryName string

// Built-in categories.
const (
	CategoryTier1            CategoryName = "tier1"
	CategoryTier2            CategoryName = "tier2"
	CategoryTier3            CategoryName = "tier3"
	CategoryEmoji            CategoryName = "emoji"
	CategoryStopWords        CategoryName = "stopwords"
	CategoryEmDash           CategoryName = "emdash"
	CategoryPolitical        CategoryName = "political"
	CategoryCustom           CategoryName = "custom"
	CategoryYouTubeClickbait CategoryName = "youtube_clickbait"
	CategoryYouTubeLowEffort CategoryName = "youtube_low_effort"
)

// ActivationKind describes what switches a category on.
type ActivationKind int

const (
	// ActivationSensitivity activates when the sensitivity reaches MinSensitivity and the toggle is on.
	ActivationSensitivity ActivationKind = iota
	// ActivationToggle activates when the toggle is on, independent of sensitivity.
	ActivationToggle
	// ActivationContext activates whenever text is scanned in the given context.
	ActivationContext
	// ActivationAlways is always active.
	ActivationAlways
)

// Toggle names a boolean switch in the configuration.
type Toggle string

// Configuration toggles.
const (
	ToggleTier1     Toggle = "tier1"
	ToggleTier2     Toggle = "tier2"
	ToggleTier3     Toggle = "tier3"
	ToggleEmojis    Toggle = "emojis"
	ToggleStopWords Toggle = "stop_words"
	ToggleEmDashes  Toggle = "em_dashes"
	TogglePolitical Toggle = "political"
)

// Activation is a category's activation rule.
type Activation struct {
	Toggle         Toggle
	Context        ScanContext
	Kind           ActivationKind
	MinSensitivity int
}

// Category is a named group of patterns with a fixed per-match weight.
type Category struct {
	Name       CategoryName
	Label      string
	Activation Activation
	Weight     int
}

// IsActive reports whether the category's activation rule is satisfied by cfg.
func (c Category) IsActive(cfg Configuration) bool {
	switch c.Activation.Kind {
	case ActivationAlways:
		return true
	case ActivationContext:
		return cfg.Context == c.Activation.Context
	case ActivationToggle:
		return cfg.Enabled(c.Activation.Toggle)
	case ActivationSensitivity:
		if c.Activation.Toggle != "" && !cfg.Enabled(c.Activation.Toggle) {
			return false
		}
		return cfg.EffectiveSensitivity() >= c.Activation.MinSensitivity
	}
	return false
}
