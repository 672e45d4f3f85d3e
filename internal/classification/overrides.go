package classification

import (
	"fmt"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"gopkg.in/yaml.v3"
)

// Overrides carries user replacements for the tier lists plus custom rules.
// A nil tier list keeps the built-in patterns; an empty one disables the tier.
type Overrides struct {
	Tier1  []string              `json:"tier1,omitempty" yaml:"tier1,omitempty"`
	Tier2  []string              `json:"tier2,omitempty" yaml:"tier2,omitempty"`
	Tier3  []string              `json:"tier3,omitempty" yaml:"tier3,omitempty"`
	Custom []model.CustomPattern `json:"custom,omitempty" yaml:"custom,omitempty"`
}

func (o Overrides) tier(name model.CategoryName) ([]string, bool) {
	var list []string
	switch name {
	case model.CategoryTier1:
		list = o.Tier1
	case model.CategoryTier2:
		list = o.Tier2
	case model.CategoryTier3:
		list = o.Tier3
	default:
		return nil, false
	}
	return list, list != nil
}

// IsZero reports whether the overrides change nothing.
func (o Overrides) IsZero() bool {
	return o.Tier1 == nil && o.Tier2 == nil && o.Tier3 == nil && len(o.Custom) == 0
}

// ParseOverrides decodes serialized overrides. YAML and JSON are both accepted.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("%w: overrides: %v", common.ErrInvalidConfig, err)
	}
	return o, nil
}

// MarshalOverrides serializes overrides as YAML.
func MarshalOverrides(o Overrides) ([]byte, error) {
	data, err := yaml.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal overrides: %w", err)
	}
	return data, nil
}

// BuiltinOverrides returns the built-in tier lists in override form, suitable
// as a starting point for editing.
func BuiltinOverrides() Overrides {
	return Overrides{
		Tier1: append([]string(nil), tier1Literals...),
		Tier2: append([]string(nil), tier2Literals...),
		Tier3: append([]string(nil), tier3Literals...),
	}
}
