package model

import "time"

// ScanRun summarizes one batch scan.
type ScanRun struct {
	StartedAt   time.Time
	FinishedAt  time.Time
	ID          string
	Source      string
	Context     ScanContext
	Sensitivity int
	Elements    int
	Clean       int
	Borderline  int
	Blocked     int
	Skipped     int
}

// Tally adds one element outcome to the counters.
func (r *ScanRun) Tally(c Classification, skipped bool) {
	switch {
	case skipped:
		r.Skipped++
	case c == Blocked:
		r.Blocked++
	case c == Borderline:
		r.Borderline++
	default:
		r.Clean++
	}
}

// Duration is the wall time of the run.
func (r ScanRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
