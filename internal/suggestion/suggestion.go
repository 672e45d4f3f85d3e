// Package suggestion maps matched phrases to rewrite advice and holds the
// phrasebook of plainer alternatives.
package suggestion

import (
	"strings"

	"github.com/Veraticus/deslop/internal/model"
	"golang.org/x/text/unicode/norm"
)

type entry struct {
	phrase string
	text   string
}

// suggestions is searched in order, so earlier entries win substring lookups.
var suggestions = []entry{
	{"delve into", "Try: \"explore\", \"examine\", or just be specific about what you're doing"},
	{"navigate the landscape", "Be specific: What actual situation or field are you referring to?"},
	{"paradigm shift", "Use concrete terms: What specifically changed?"},
	{"game-changer", "Explain why it matters instead of using buzzwords"},
	{"transformative", "Describe the actual transformation"},
	{"leverage", "Try: \"use\", \"apply\", or \"take advantage of\""},
	{"synergy", "Explain the actual collaboration or benefit"},
	{"circle back", "Say: \"follow up\", \"return to\", or \"revisit\""},
	{"deep dive", "Say: \"detailed analysis\" or \"thorough examination\""},
	{"unlock", "Be specific about what becomes possible"},
	{"seamlessly", "Show how it integrates instead of claiming it does"},
	{"robust", "Describe the actual features or strengths"},
	{"comprehensive", "List what it covers"},
	{"holistic", "Explain how you're considering all aspects"},
	{"disruptive", "Explain what it changes and how"},
	{"innovative", "Describe what's new about it"},
	{"breakthrough", "Explain what barrier was overcome"},
	{"revolutionary", "Describe the actual impact"},
	{"amazing", "Use specific, measurable descriptors"},
	{"incredible", "Provide concrete details"},
	{"unprecedented", "If true, explain what makes it unique"},
	{"thrilling time to be alive", "Be specific about the advancement you're discussing"},
	// Engagement openers
	{"excited to announce", "Skip the marketing fluff. Just state what you're announcing directly."},
	{"thrilled to share", "Get to the point. Share the actual information without the preamble."},
	{"proud to announce", "Drop the self-congratulation. Let the content speak for itself."},
	{"happy to share", "Remove this empty opener. Start with the actual content."},
	{"big news", "Don't hype it. If it's actually important, explain why."},
	{"exciting news", "Skip the editorial. Just share the information."},
	{"just launched", "State what you launched and why it matters, without the announcement fanfare."},
	{"guess what", "Don't make people guess. State your point directly."},
	{"check out", "Describe what it is and why it matters, don't just ask for engagement."},
	{"can't wait to share", "Then share it. Don't pad with artificial excitement."},
	{"\u2014", "Em dashes are a telltale sign of AI-generated or overly dramatic content. Use simple punctuation instead."},
}

var exact = func() map[string]string {
	m := make(map[string]string, len(suggestions))
	for _, e := range suggestions {
		m[e.phrase] = e.text
	}
	return m
}()

// Suggest returns advice for a matched phrase. It tries an exact lookup, then
// substring containment in either direction, then the category's fallback.
// Containment is loose: a short phrase can pick up an unrelated entry.
func Suggest(phrase string, category model.CategoryName) string {
	key := Normalize(phrase)
	if key == "" {
		return Fallback(category)
	}

	if text, ok := exact[key]; ok {
		return text
	}

	for _, e := range suggestions {
		if strings.Contains(e.phrase, key) || strings.Contains(key, e.phrase) {
			return e.text
		}
	}

	return Fallback(category)
}

// Normalize lowercases, trims and NFC-normalizes a phrase for lookup.
func Normalize(phrase string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(phrase)))
}

// Fallback returns the generic advice for a category.
func Fallback(category model.CategoryName) string {
	switch category {
	case model.CategoryTier1:
		return "This is AI-generated slop language. Be specific and authentic instead of using generic phrases."
	case model.CategoryTier2:
		return "This is corporate buzzword jargon. Use plain language to describe what you actually mean."
	case model.CategoryTier3:
		return "This is marketing spam language. Remove hype and be factual."
	case model.CategoryEmoji:
		return "Excessive emoji usage combined with buzzwords signals low-quality content. Use emojis sparingly if at all."
	case model.CategoryStopWords:
		return "Skip the engagement opener and start with the actual content."
	case model.CategoryEmDash:
		return "Use simple punctuation instead of em dashes."
	case model.CategoryPolitical:
		return "This touches a political topic. Filtered because political content blocking is on."
	case model.CategoryYouTubeClickbait:
		return "Describe what the video actually shows instead of teasing it."
	case model.CategoryYouTubeLowEffort:
		return "Say something about the content or skip the comment."
	default:
		return "Consider rewriting this phrase to be more specific and less generic."
	}
}
