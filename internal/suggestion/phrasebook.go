package suggestion

import (
	"math/rand/v2"
	"strings"

	"github.com/Veraticus/deslop/internal/model"
)

var phrasebook = []model.PhrasebookEntry{
	// Generated prose
	{Slop: "delve into", Better: "explore, examine, or analyze", Tier: model.CategoryTier1},
	{Slop: "navigate the landscape", Better: "understand the situation, explore the field", Tier: model.CategoryTier1},
	{Slop: "paradigm shift", Better: "major change, fundamental shift", Tier: model.CategoryTier1},
	{Slop: "game-changer", Better: "significant advancement, important development", Tier: model.CategoryTier1},
	{Slop: "transformative", Better: "describe the actual change that occurred", Tier: model.CategoryTier1},
	{Slop: "unlock potential", Better: "enable, allow, make possible", Tier: model.CategoryTier1},
	{Slop: "seamlessly integrate", Better: "integrate, combine, work together", Tier: model.CategoryTier1},
	{Slop: "holistic approach", Better: "comprehensive method, complete strategy", Tier: model.CategoryTier1},
	{Slop: "robust solution", Better: "reliable system, strong approach", Tier: model.CategoryTier1},
	{Slop: "deep dive", Better: "detailed analysis, thorough examination", Tier: model.CategoryTier1},
	{Slop: "tapestry of", Better: "collection of, mixture of", Tier: model.CategoryTier1},
	{Slop: "realm of possibilities", Better: "opportunities, options", Tier: model.CategoryTier1},
	{Slop: "unprecedented", Better: "rare, unusual, or explain what makes it unique", Tier: model.CategoryTier1},
	{Slop: "groundbreaking", Better: "innovative, new, or explain the innovation", Tier: model.CategoryTier1},
	{Slop: "treasure trove", Better: "collection, resource, source", Tier: model.CategoryTier1},
	{Slop: "uncharted waters", Better: "new territory, unexplored area", Tier: model.CategoryTier1},
	{Slop: "shed light on", Better: "explain, clarify, reveal", Tier: model.CategoryTier1},
	{Slop: "at the end of the day", Better: "ultimately, finally, in conclusion", Tier: model.CategoryTier1},
	{Slop: "moving forward", Better: "in the future, next, from now on", Tier: model.CategoryTier1},
	{Slop: "key takeaways", Better: "main points, summary, conclusions", Tier: model.CategoryTier1},
	{Slop: "breakthrough", Better: "advancement, discovery, or explain what barrier was overcome", Tier: model.CategoryTier1},
	{Slop: "thrilling time to be alive", Better: "be specific about the advancement you're discussing", Tier: model.CategoryTier1},
	{Slop: "dazzling pace", Better: "rapid speed, fast rate", Tier: model.CategoryTier1},
	{Slop: "rewriting history", Better: "changing our understanding, creating new precedent", Tier: model.CategoryTier1},
	{Slop: "it's clear that", Better: "state your point directly without the preamble", Tier: model.CategoryTier1},

	// Engagement openers
	{Slop: "I'm excited to announce", Better: "just announce it directly", Tier: model.CategoryStopWords},
	{Slop: "thrilled to share", Better: "share it without the emotional wrapper", Tier: model.CategoryStopWords},
	{Slop: "proud to announce", Better: "remove the self-congratulation", Tier: model.CategoryStopWords},
	{Slop: "happy to share", Better: "skip the filler, share the content", Tier: model.CategoryStopWords},
	{Slop: "big news!", Better: "if it's important, explain why", Tier: model.CategoryStopWords},
	{Slop: "just launched", Better: "state what you launched and why it matters", Tier: model.CategoryStopWords},
	{Slop: "guess what?", Better: "state your point directly", Tier: model.CategoryStopWords},
	{Slop: "check out", Better: "describe what it is and why it matters", Tier: model.CategoryStopWords},
	{Slop: "can't wait to share", Better: "then share it without padding", Tier: model.CategoryStopWords},

	// Corporate jargon
	{Slop: "synergy", Better: "collaboration, cooperation, combined effort", Tier: model.CategoryTier2},
	{Slop: "leverage", Better: "use, apply, take advantage of", Tier: model.CategoryTier2},
	{Slop: "circle back", Better: "follow up, return to, revisit", Tier: model.CategoryTier2},
	{Slop: "low-hanging fruit", Better: "easy wins, simple tasks, quick improvements", Tier: model.CategoryTier2},
	{Slop: "move the needle", Better: "make progress, create impact, improve results", Tier: model.CategoryTier2},
	{Slop: "think outside the box", Better: "be creative, find new approaches, innovate", Tier: model.CategoryTier2},
	{Slop: "touch base", Better: "meet, discuss, check in", Tier: model.CategoryTier2},
	{Slop: "take it offline", Better: "discuss privately, continue later", Tier: model.CategoryTier2},
	{Slop: "pivot", Better: "change direction, adjust strategy, shift approach", Tier: model.CategoryTier2},
	{Slop: "disruptive", Better: "explain what it changes and how", Tier: model.CategoryTier2},
	{Slop: "bandwidth", Better: "time, capacity, availability", Tier: model.CategoryTier2},
	{Slop: "stakeholders", Better: "people involved, team members, participants", Tier: model.CategoryTier2},
	{Slop: "value-add", Better: "benefit, advantage, improvement", Tier: model.CategoryTier2},
	{Slop: "thought leader", Better: "expert, specialist, authority", Tier: model.CategoryTier2},
	{Slop: "best practices", Better: "effective methods, proven approaches", Tier: model.CategoryTier2},
	{Slop: "blue-sky thinking", Better: "creative thinking, brainstorming, ideation", Tier: model.CategoryTier2},
	{Slop: "ideate", Better: "brainstorm, create ideas, think creatively", Tier: model.CategoryTier2},
	{Slop: "operationalize", Better: "implement, execute, put into practice", Tier: model.CategoryTier2},
	{Slop: "socialize", Better: "share, discuss, get feedback on", Tier: model.CategoryTier2},
	{Slop: "big data", Better: "large datasets, data analysis", Tier: model.CategoryTier2},
	{Slop: "digital transformation", Better: "adopting digital tools, modernizing technology", Tier: model.CategoryTier2},
	{Slop: "AI-powered", Better: "uses AI, incorporates machine learning", Tier: model.CategoryTier2},
	{Slop: "deliverables", Better: "outputs, results, products", Tier: model.CategoryTier2},
	{Slop: "empower", Better: "enable, allow, give authority to", Tier: model.CategoryTier2},
	{Slop: "optimize", Better: "improve, enhance, make more efficient", Tier: model.CategoryTier2},
	{Slop: "streamline", Better: "simplify, make efficient, improve process", Tier: model.CategoryTier2},

	// Marketing hype
	{Slop: "amazing", Better: "use specific, measurable descriptors", Tier: model.CategoryTier3},
	{Slop: "incredible", Better: "provide concrete details instead", Tier: model.CategoryTier3},
	{Slop: "unbelievable", Better: "describe what makes it remarkable", Tier: model.CategoryTier3},
	{Slop: "mind-blowing", Better: "explain the impact or innovation", Tier: model.CategoryTier3},
	{Slop: "revolutionary", Better: "describe the actual change", Tier: model.CategoryTier3},
	{Slop: "miracle", Better: "unexpected result, surprising outcome", Tier: model.CategoryTier3},
	{Slop: "best-in-class", Better: "leading, top-performing, highest-rated", Tier: model.CategoryTier3},
	{Slop: "click here", Better: "describe what they'll see/get", Tier: model.CategoryTier3},
	{Slop: "buy now", Better: "explain the value proposition", Tier: model.CategoryTier3},
	{Slop: "limited time offer", Better: "state the specific deadline", Tier: model.CategoryTier3},
	{Slop: "guaranteed", Better: "explain the terms clearly", Tier: model.CategoryTier3},
	{Slop: "risk-free", Better: "describe the policy explicitly", Tier: model.CategoryTier3},
	{Slop: "must-have", Better: "explain why it's necessary", Tier: model.CategoryTier3},
	{Slop: "next-level", Better: "describe the improvement", Tier: model.CategoryTier3},
	{Slop: "raise the bar", Better: "set new standards, improve expectations", Tier: model.CategoryTier3},
	{Slop: "basically", Better: "remove it or be more precise", Tier: model.CategoryTier3},
	{Slop: "essentially", Better: "remove it or be more specific", Tier: model.CategoryTier3},
	{Slop: "actually", Better: "often unnecessary - remove it", Tier: model.CategoryTier3},

	// Punctuation
	{Slop: "em dash (\u2014)", Better: "use periods, commas, or remove the dramatic pause", Tier: model.CategoryEmDash},

	// More generated prose
	{Slop: "landscape is changing", Better: "be specific about what changed", Tier: model.CategoryTier1},
	{Slop: "ever-changing world", Better: "specify the change or time period", Tier: model.CategoryTier1},
	{Slop: "fast-paced environment", Better: "describe what makes it fast-paced", Tier: model.CategoryTier1},
	{Slop: "crucial to understand", Better: "state your point directly", Tier: model.CategoryTier1},
	{Slop: "vital to recognize", Better: "remove the preamble, make your point", Tier: model.CategoryTier1},
	{Slop: "important to note that", Better: "just state the fact", Tier: model.CategoryTier1},
	{Slop: "worth mentioning", Better: "if it's worth mentioning, just mention it", Tier: model.CategoryTier1},
	{Slop: "proven track record", Better: "cite specific achievements or metrics", Tier: model.CategoryTier1},
	{Slop: "time-tested", Better: "state how long and what outcomes", Tier: model.CategoryTier1},
	{Slop: "tried and true", Better: "cite specific results or history", Tier: model.CategoryTier1},
	{Slop: "exciting times ahead", Better: "describe what's coming specifically", Tier: model.CategoryTier1},
	{Slop: "bright future", Better: "explain what makes it bright", Tier: model.CategoryTier1},
	{Slop: "promising outlook", Better: "specify the promise", Tier: model.CategoryTier1},
	{Slop: "poised to become", Better: "state what it is now and when", Tier: model.CategoryTier1},
	{Slop: "set to revolutionize", Better: "describe the actual change", Tier: model.CategoryTier1},
	{Slop: "on the brink of", Better: "state the situation clearly", Tier: model.CategoryTier1},
	{Slop: "heralds a new era", Better: "describe what's different", Tier: model.CategoryTier1},
	{Slop: "ushers in change", Better: "describe the change", Tier: model.CategoryTier1},
	{Slop: "watershed moment", Better: "explain why it matters", Tier: model.CategoryTier1},
	{Slop: "inflection point", Better: "describe the turning point", Tier: model.CategoryTier1},
	{Slop: "tipping point", Better: "explain what tipped and why", Tier: model.CategoryTier1},
	{Slop: "perfect storm", Better: "list the specific factors", Tier: model.CategoryTier1},
	{Slop: "convergence of", Better: "list what is combining", Tier: model.CategoryTier1},
	{Slop: "at the forefront", Better: "explain the leadership position", Tier: model.CategoryTier1},
	{Slop: "spearheading", Better: "describe the leadership role", Tier: model.CategoryTier1},
	{Slop: "pioneering", Better: "explain what is new or first", Tier: model.CategoryTier1},
	{Slop: "trailblazing", Better: "describe the new path", Tier: model.CategoryTier1},
	{Slop: "industry-leading", Better: "cite metrics or rankings", Tier: model.CategoryTier1},
	{Slop: "market-leading", Better: "provide market share data", Tier: model.CategoryTier1},
	{Slop: "world-class", Better: "cite comparative metrics", Tier: model.CategoryTier1},
	{Slop: "best-of-breed", Better: "specify which features are best", Tier: model.CategoryTier1},
	{Slop: "bleeding-edge", Better: "explain what's new about it", Tier: model.CategoryTier1},
	{Slop: "future-proof", Better: "explain adaptability features", Tier: model.CategoryTier1},
	{Slop: "forward-thinking", Better: "describe the strategy", Tier: model.CategoryTier1},
	{Slop: "visionary approach", Better: "describe the vision", Tier: model.CategoryTier1},
	{Slop: "strategic imperative", Better: "explain why it's necessary", Tier: model.CategoryTier1},
	{Slop: "key differentiator", Better: "state what makes it different", Tier: model.CategoryTier1},
	{Slop: "fundamentally different", Better: "describe the difference", Tier: model.CategoryTier1},
	{Slop: "dramatically improved", Better: "provide specific metrics", Tier: model.CategoryTier1},
	{Slop: "exponential growth", Better: "cite actual growth numbers", Tier: model.CategoryTier1},
	{Slop: "unique opportunity", Better: "explain what makes it unique", Tier: model.CategoryTier1},
	{Slop: "compelling case", Better: "present the evidence", Tier: model.CategoryTier1},
	{Slop: "undeniably", Better: "present facts, let them speak", Tier: model.CategoryTier1},
	{Slop: "beyond doubt", Better: "state your conclusion directly", Tier: model.CategoryTier1},
	{Slop: "needless to say", Better: "then don't say it, or just say it", Tier: model.CategoryTier1},
	{Slop: "it goes without saying", Better: "obviously it doesn't - just say it", Tier: model.CategoryTier1},
	{Slop: "long story short", Better: "tell the short story then", Tier: model.CategoryTier1},
	{Slop: "cutting to the chase", Better: "just do it", Tier: model.CategoryTier1},
	{Slop: "bottom line", Better: "state the conclusion", Tier: model.CategoryTier1},
	{Slop: "gaining traction", Better: "cite adoption metrics", Tier: model.CategoryTier1},
	{Slop: "picking up momentum", Better: "provide growth data", Tier: model.CategoryTier1},
	{Slop: "on an upward trajectory", Better: "show the trend with data", Tier: model.CategoryTier1},
	{Slop: "skyrocketing", Better: "provide actual numbers", Tier: model.CategoryTier1},
	{Slop: "meteoric rise", Better: "cite growth rate and timeline", Tier: model.CategoryTier1},
	{Slop: "unprecedented growth", Better: "provide historical comparison", Tier: model.CategoryTier1},
	{Slop: "record-breaking", Better: "cite the previous record and new one", Tier: model.CategoryTier1},
	{Slop: "bar-setting", Better: "explain what bar was set", Tier: model.CategoryTier1},
	{Slop: "industry-defining", Better: "explain how it defined industry", Tier: model.CategoryTier1},

	// More corporate jargon
	{Slop: "alignment", Better: "agreement, coordination", Tier: model.CategoryTier2},
	{Slop: "get on the same page", Better: "agree, coordinate, clarify", Tier: model.CategoryTier2},
	{Slop: "win-win", Better: "mutually beneficial, both parties benefit", Tier: model.CategoryTier2},
	{Slop: "cross-functional", Better: "multiple departments, various teams", Tier: model.CategoryTier2},
	{Slop: "end-to-end solution", Better: "complete system, full process", Tier: model.CategoryTier2},
	{Slop: "one-stop-shop", Better: "single provider, all services included", Tier: model.CategoryTier2},
	{Slop: "turnkey solution", Better: "ready to use, complete system", Tier: model.CategoryTier2},
	{Slop: "plug-and-play", Better: "ready to use, no setup needed", Tier: model.CategoryTier2},
	{Slop: "out-of-the-box", Better: "included by default, standard feature", Tier: model.CategoryTier2},
	{Slop: "full-stack", Better: "complete system, all layers", Tier: model.CategoryTier2},
	{Slop: "hands on deck", Better: "everyone working, full team effort", Tier: model.CategoryTier2},
	{Slop: "rolling up sleeves", Better: "getting to work, taking action", Tier: model.CategoryTier2},
	{Slop: "gold standard", Better: "highest quality, best example", Tier: model.CategoryTier2},
	{Slop: "enterprise-grade", Better: "reliable, secure, scalable", Tier: model.CategoryTier2},
	{Slop: "production-ready", Better: "stable, tested, deployable", Tier: model.CategoryTier2},
	{Slop: "battle-tested", Better: "proven in production, reliable", Tier: model.CategoryTier2},
	{Slop: "frictionless", Better: "smooth, easy, simple", Tier: model.CategoryTier2},
	{Slop: "effortlessly", Better: "easily, simply, smoothly", Tier: model.CategoryTier2},
	{Slop: "transparency", Better: "visibility, clarity, openness", Tier: model.CategoryTier2},
	{Slop: "actionable insights", Better: "useful data, clear recommendations", Tier: model.CategoryTier2},
	{Slop: "data-backed", Better: "supported by data, evidence-based", Tier: model.CategoryTier2},
	{Slop: "first principles", Better: "fundamental approach, basics-first", Tier: model.CategoryTier2},
	{Slop: "purpose-built", Better: "designed specifically for, custom-made", Tier: model.CategoryTier2},
	{Slop: "bespoke", Better: "custom, tailored, customized", Tier: model.CategoryTier2},
	{Slop: "white-glove service", Better: "premium support, personalized service", Tier: model.CategoryTier2},
	{Slop: "24/7", Better: "always available, continuous", Tier: model.CategoryTier2},
	{Slop: "high-availability", Better: "rarely down, reliable uptime", Tier: model.CategoryTier2},
	{Slop: "fault-tolerant", Better: "handles failures, stays running", Tier: model.CategoryTier2},
	{Slop: "self-healing", Better: "auto-recovery, automatic fixes", Tier: model.CategoryTier2},
	{Slop: "auto-scaling", Better: "adjusts capacity automatically", Tier: model.CategoryTier2},
	{Slop: "on-demand", Better: "when needed, available immediately", Tier: model.CategoryTier2},
	{Slop: "cloud-native", Better: "built for cloud, designed for distributed systems", Tier: model.CategoryTier2},
	{Slop: "microservices", Better: "small services, modular architecture", Tier: model.CategoryTier2},
	{Slop: "serverless", Better: "no server management, managed infrastructure", Tier: model.CategoryTier2},
	{Slop: "real-time", Better: "immediate, instant, no delay", Tier: model.CategoryTier2},
	{Slop: "lightning-fast", Better: "very fast (cite actual speed)", Tier: model.CategoryTier2},
	{Slop: "low-latency", Better: "fast response (cite milliseconds)", Tier: model.CategoryTier2},
	{Slop: "performant", Better: "fast, efficient (provide metrics)", Tier: model.CategoryTier2},
	{Slop: "modular", Better: "separable components, independent parts", Tier: model.CategoryTier2},
	{Slop: "extensible", Better: "can be expanded, supports additions", Tier: model.CategoryTier2},
	{Slop: "adaptable", Better: "adjusts to needs, configurable", Tier: model.CategoryTier2},
	{Slop: "no-code", Better: "visual configuration, no programming needed", Tier: model.CategoryTier2},
	{Slop: "low-code", Better: "minimal programming, mostly visual", Tier: model.CategoryTier2},
	{Slop: "drag-and-drop", Better: "visual interface, mouse-driven", Tier: model.CategoryTier2},
	{Slop: "user-friendly", Better: "easy to use, intuitive", Tier: model.CategoryTier2},

	// More marketing hype
	{Slop: "awesome", Better: "be specific about what makes it good", Tier: model.CategoryTier3},
	{Slop: "fantastic", Better: "describe the actual features", Tier: model.CategoryTier3},
	{Slop: "spectacular", Better: "cite specific achievements", Tier: model.CategoryTier3},
	{Slop: "phenomenal", Better: "provide measurable results", Tier: model.CategoryTier3},
	{Slop: "outstanding", Better: "explain what stands out", Tier: model.CategoryTier3},
	{Slop: "exceptional", Better: "describe the exception", Tier: model.CategoryTier3},
	{Slop: "extraordinary", Better: "compare to ordinary alternatives", Tier: model.CategoryTier3},
	{Slop: "stunning", Better: "provide concrete details", Tier: model.CategoryTier3},
	{Slop: "insanely good", Better: "use specific, measurable terms", Tier: model.CategoryTier3},
	{Slop: "epic", Better: "describe scope or scale specifically", Tier: model.CategoryTier3},
	{Slop: "legendary", Better: "cite the history or legacy", Tier: model.CategoryTier3},
	{Slop: "10x", Better: "provide actual comparison metrics", Tier: model.CategoryTier3},
	{Slop: "secrets to success", Better: "specific methods, proven techniques", Tier: model.CategoryTier3},
	{Slop: "hidden gems", Better: "underused features, lesser-known options", Tier: model.CategoryTier3},
	{Slop: "insider tips", Better: "expert advice, advanced techniques", Tier: model.CategoryTier3},
	{Slop: "exclusive access", Better: "early access, limited availability", Tier: model.CategoryTier3},
	{Slop: "VIP treatment", Better: "premium features, priority support", Tier: model.CategoryTier3},
	{Slop: "elite members", Better: "premium tier, advanced users", Tier: model.CategoryTier3},
	{Slop: "early bird", Better: "launch discount, introductory price", Tier: model.CategoryTier3},
	{Slop: "don't miss out", Better: "available until [date], limited quantity", Tier: model.CategoryTier3},
	{Slop: "FOMO", Better: "state the actual deadline or limit", Tier: model.CategoryTier3},
	{Slop: "hurry", Better: "ends [specific date/time]", Tier: model.CategoryTier3},
	{Slop: "fast-track", Better: "expedited process, priority handling", Tier: model.CategoryTier3},
	{Slop: "shortcuts", Better: "efficient methods, time-saving techniques", Tier: model.CategoryTier3},
	{Slop: "life hacks", Better: "time-saving tips, efficiency methods", Tier: model.CategoryTier3},
	{Slop: "growth hacking", Better: "rapid experimentation, data-driven marketing", Tier: model.CategoryTier3},
	{Slop: "master class", Better: "expert training, advanced course", Tier: model.CategoryTier3},
	{Slop: "blueprint", Better: "detailed plan, step-by-step guide", Tier: model.CategoryTier3},
	{Slop: "foolproof", Better: "reliable method, proven process", Tier: model.CategoryTier3},
	{Slop: "no-brainer", Better: "obvious choice, clear benefit", Tier: model.CategoryTier3},
	{Slop: "overnight success", Better: "cite actual timeline and effort", Tier: model.CategoryTier3},
	{Slop: "instant results", Better: "state actual timeframe", Tier: model.CategoryTier3},
	{Slop: "right now", Better: "specify when it's available", Tier: model.CategoryTier3},
	{Slop: "don't delay", Better: "available until [date]", Tier: model.CategoryTier3},
	{Slop: "take action now", Better: "sign up by [date], offer ends [date]", Tier: model.CategoryTier3},
	{Slop: "try it free", Better: "free trial until [date], no credit card required", Tier: model.CategoryTier3},
	{Slop: "cancel anytime", Better: "no long-term contract, month-to-month", Tier: model.CategoryTier3},
	{Slop: "money-back guarantee", Better: "refund within [X] days if unsatisfied", Tier: model.CategoryTier3},
	{Slop: "100% free", Better: "no cost, no payment required", Tier: model.CategoryTier3},
	{Slop: "no catch", Better: "transparent pricing, clear terms", Tier: model.CategoryTier3},
	{Slop: "trusted by millions", Better: "cite actual user count and source", Tier: model.CategoryTier3},
	{Slop: "award-winning", Better: "won [specific award] in [year]", Tier: model.CategoryTier3},
	{Slop: "#1 rated", Better: "top-rated by [source], ranked #1 on [platform]", Tier: model.CategoryTier3},
	{Slop: "5-star reviews", Better: "average rating of X from Y reviews", Tier: model.CategoryTier3},
	{Slop: "transform your life", Better: "describe specific improvements", Tier: model.CategoryTier3},
	{Slop: "change your life", Better: "detail the expected changes", Tier: model.CategoryTier3},
	{Slop: "unlock your potential", Better: "develop [specific skills]", Tier: model.CategoryTier3},
	{Slop: "discover how", Better: "state directly what they'll learn", Tier: model.CategoryTier3},
	{Slop: "learn the secret", Better: "teach [specific skill or method]", Tier: model.CategoryTier3},
	{Slop: "find out why", Better: "explain the reason directly", Tier: model.CategoryTier3},
	{Slop: "learn more", Better: "see full details, view documentation", Tier: model.CategoryTier3},
	{Slop: "get started", Better: "create account, sign up now", Tier: model.CategoryTier3},
	{Slop: "kickstart your", Better: "begin [specific activity]", Tier: model.CategoryTier3},
	{Slop: "boost your", Better: "improve [specific metric] by [amount]", Tier: model.CategoryTier3},
	{Slop: "double your", Better: "2x increase in [specific metric]", Tier: model.CategoryTier3},
}

// Phrasebook returns every entry in declaration order.
func Phrasebook() []model.PhrasebookEntry {
	return append([]model.PhrasebookEntry(nil), phrasebook...)
}

// Filter returns entries in tier whose slop phrase contains search.
// An empty tier or search matches everything.
func Filter(tier model.CategoryName, search string) []model.PhrasebookEntry {
	search = strings.ToLower(search)

	var out []model.PhrasebookEntry
	for _, e := range phrasebook {
		if tier != "" && e.Tier != tier {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Slop), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Spin picks a random entry. A nil rng uses the global source.
func Spin(rng *rand.Rand) model.PhrasebookEntry {
	if rng == nil {
		return phrasebook[rand.IntN(len(phrasebook))]
	}
	return phrasebook[rng.IntN(len(phrasebook))]
}

// TierLabel returns the display label for a phrasebook tier.
func TierLabel(tier model.CategoryName) string {
	switch tier {
	case model.CategoryTier1:
		return "AI Slop - 3pts"
	case model.CategoryTier2:
		return "Corporate - 2pts"
	case model.CategoryTier3:
		return "Marketing - 1pt"
	case model.CategoryStopWords:
		return "Stop Words - 3pts"
	case model.CategoryEmDash:
		return "Em Dash - 3pts"
	}
	return string(tier)
}
