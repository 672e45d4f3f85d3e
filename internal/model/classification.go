package model

// Classification is the verdict for a score under a threshold.
type Classification string

// Classification values.
const (
	Clean      Classification = "clean"
	Borderline Classification = "borderline"
	Blocked    Classification = "blocked"
)

// Label returns the status line shown to users.
func (c Classification) Label() string {
	switch c {
	case Clean:
		return "CLEAN - No slop detected"
	case Borderline:
		return "BORDERLINE - Close but passes"
	case Blocked:
		return "SLOP DETECTED - Would be blocked"
	}
	return string(c)
}
