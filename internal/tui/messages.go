package tui

// debounceMsg fires after a pause in typing. Only the tick whose seq matches
// the latest edit triggers scoring.
type debounceMsg struct {
	seq int
}
