package model

import "time"

// CustomPatternRecord is a stored custom pattern.
type CustomPatternRecord struct {
	CreatedAt time.Time
	CustomPattern
	ID int64
}

// WhitelistRecord is a stored whitelist entry.
type WhitelistRecord struct {
	CreatedAt time.Time
	Entry     string
}

// PhrasebookStats tracks phrasebook practice.
type PhrasebookStats struct {
	UpdatedAt time.Time
	Spins     int
	Learned   int
}
