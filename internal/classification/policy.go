package classification

import "github.com/Veraticus/deslop/internal/model"

// thresholds maps sensitivity to the score at which text is blocked.
var thresholds = map[int]int{
	1: 15,
	2: 12,
	3: 9,
	4: 6,
	5: 4,
}

// Threshold returns the blocking threshold for a sensitivity. Unknown values
// use the threshold for the default sensitivity.
func Threshold(sensitivity int) int {
	if t, ok := thresholds[sensitivity]; ok {
		return t
	}
	return thresholds[model.DefaultSensitivity]
}

// Classify maps a score and threshold to a classification.
func Classify(score, threshold int) model.Classification {
	switch {
	case score <= 0:
		return model.Clean
	case score < threshold:
		return model.Borderline
	default:
		return model.Blocked
	}
}

// ActiveCategories returns the names of the built-in categories active under cfg.
func ActiveCategories(cfg model.Configuration) []model.CategoryName {
	var names []model.CategoryName
	for _, cat := range BuiltinCategories() {
		if cat.IsActive(cfg) {
			names = append(names, cat.Name)
		}
	}
	return names
}

// Verdict is the outcome of one score at one sensitivity.
type Verdict struct {
	Sensitivity    int
	Threshold      int
	Classification model.Classification
}

// Blocked reports whether the score reached the threshold.
func (v Verdict) Blocked() bool {
	return v.Classification == model.Blocked
}

// PassesAt classifies score at every sensitivity from least to most aggressive.
func PassesAt(score int) []Verdict {
	verdicts := make([]Verdict, 0, model.MaxSensitivity)
	for s := model.MinSensitivity; s <= model.MaxSensitivity; s++ {
		t := Threshold(s)
		verdicts = append(verdicts, Verdict{
			Sensitivity:    s,
			Threshold:      t,
			Classification: Classify(score, t),
		})
	}
	return verdicts
}
