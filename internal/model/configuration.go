package model

import (
	"fmt"

	"github.com/Veraticus/deslop/internal/common"
)

// Sensitivity bounds.
const (
	MinSensitivity     = 1
	MaxSensitivity     = 5
	DefaultSensitivity = 3
)

// ScanContext names the surface a text block was taken from.
type ScanContext string

// Known scan contexts.
const (
	ContextGeneric ScanContext = ""
	ContextYouTube ScanContext = "youtube"
)

// CustomPattern is a user-defined rule in "/body/flags" form with its own weight.
type CustomPattern struct {
	Pattern string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`
	Weight  int    `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// Validate checks the fields that do not require compiling the pattern.
func (p CustomPattern) Validate() error {
	if p.Pattern == "" {
		return fmt.Errorf("%w: pattern is required", common.ErrInvalidPattern)
	}
	if p.Weight < 0 {
		return fmt.Errorf("%w: %d", common.ErrInvalidWeight, p.Weight)
	}
	return nil
}

// Configuration is an immutable snapshot of the settings used for one scoring call.
type Configuration struct {
	Context        ScanContext
	CustomPatterns []CustomPattern
	Whitelist      []string
	Sensitivity    int
	BlockTier1     bool
	BlockTier2     bool
	BlockTier3     bool
	BlockEmojis    bool
	BlockStopWords bool
	BlockEmDashes  bool
	BlockPolitical bool
}

// DefaultConfiguration returns the settings used when nothing else is available.
func DefaultConfiguration() Configuration {
	return Configuration{
		Sensitivity:    DefaultSensitivity,
		BlockTier1:     true,
		BlockTier2:     true,
		BlockTier3:     true,
		BlockEmojis:    false,
		BlockStopWords: true,
		BlockEmDashes:  true,
		BlockPolitical: false,
	}
}

// EffectiveSensitivity returns the sensitivity, or the default when it is out of range.
func (c Configuration) EffectiveSensitivity() int {
	if c.Sensitivity < MinSensitivity || c.Sensitivity > MaxSensitivity {
		return DefaultSensitivity
	}
	return c.Sensitivity
}

// Enabled reports the value of a toggle.
func (c Configuration) Enabled(t Toggle) bool {
	switch t {
	case ToggleTier1:
		return c.BlockTier1
	case ToggleTier2:
		return c.BlockTier2
	case ToggleTier3:
		return c.BlockTier3
	case ToggleEmojis:
		return c.BlockEmojis
	case ToggleStopWords:
		return c.BlockStopWords
	case ToggleEmDashes:
		return c.BlockEmDashes
	case TogglePolitical:
		return c.BlockPolitical
	}
	return false
}

// WithSensitivity returns a copy of c with a different sensitivity.
func (c Configuration) WithSensitivity(s int) Configuration {
	c.Sensitivity = s
	return c
}

// ValidateSensitivity rejects values outside [MinSensitivity, MaxSensitivity].
func ValidateSensitivity(s int) error {
	if s < MinSensitivity || s > MaxSensitivity {
		return fmt.Errorf("%w: got %d", common.ErrInvalidSensitivity, s)
	}
	return nil
}
