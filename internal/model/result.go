package model

// PatternHit records how much one pattern contributed to a score.
type PatternHit struct {
	Pattern     string // pattern source, without delimiters
	MatchedText string // first occurrence in the text
	Count       int
	Points      int
}

// ScoreResult is the outcome of scoring one text.
type ScoreResult struct {
	Matches map[CategoryName][]PatternHit
	// Order lists the categories that contributed, in evaluation order.
	Order []CategoryName
	Total int
}

// Add appends a hit under category and updates the total.
func (r *ScoreResult) Add(category CategoryName, hit PatternHit) {
	if r.Matches == nil {
		r.Matches = make(map[CategoryName][]PatternHit)
	}
	if _, ok := r.Matches[category]; !ok {
		r.Order = append(r.Order, category)
	}
	r.Matches[category] = append(r.Matches[category], hit)
	r.Total += hit.Points
}

// CategoryPoints returns the points contributed by one category.
func (r ScoreResult) CategoryPoints(category CategoryName) int {
	total := 0
	for _, hit := range r.Matches[category] {
		total += hit.Points
	}
	return total
}

// HitCount returns the number of distinct patterns that matched.
func (r ScoreResult) HitCount() int {
	n := 0
	for _, hits := range r.Matches {
		n += len(hits)
	}
	return n
}

// Match is a positional occurrence used for highlighting. Offsets are byte
// offsets into the original text, half-open.
type Match struct {
	Text     string
	Category CategoryName
	Start    int
	End      int
}
