package model

// PhrasebookEntry pairs a slop phrase with plainer wording.
type PhrasebookEntry struct {
	Slop   string
	Better string
	Tier   CategoryName
}
