package scan

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/whitelist"
)

// Evaluator scores and classifies a single element.
type Evaluator interface {
	Evaluate(text string, cfg model.Configuration) (model.ScoreResult, model.Classification)
}

// Options controls a scan.
type Options struct {
	// OnFinding is called once per element as results arrive, in completion
	// order, from the collecting goroutine.
	OnFinding func(Finding)
	// URL is the page the documents came from. A whitelisted URL skips the
	// whole scan without scoring anything.
	URL string
	// Config is the classification configuration; its Context selects how
	// documents are split.
	Config model.Configuration
	// MinLength is the minimum element length in characters. Shorter
	// elements are skipped.
	MinLength int
	// Workers bounds concurrent scoring. Values below 1 mean 1.
	Workers int
}

// Finding is the outcome for one element.
type Finding struct {
	Result model.ScoreResult
	Element
	Classification model.Classification
	Skipped        bool
}

// Report is the result of a scan.
type Report struct {
	Findings    []Finding
	Run         model.ScanRun
	Whitelisted bool
}

// Scan splits docs into elements and classifies each. Findings are returned in
// document then element order.
func Scan(ctx context.Context, ev Evaluator, source string, docs []Document, opts Options) (*Report, error) {
	report := &Report{
		Run: model.ScanRun{
			StartedAt:   time.Now(),
			Source:      source,
			Context:     opts.Config.Context,
			Sensitivity: opts.Config.EffectiveSensitivity(),
		},
	}

	var elements []Element
	for _, doc := range docs {
		elements = append(elements, Split(doc, opts.Config.Context)...)
	}
	report.Run.Elements = len(elements)
	report.Findings = make([]Finding, len(elements))

	if opts.URL != "" && whitelist.IsWhitelisted(opts.URL, opts.Config.Whitelist) {
		slog.Info("URL is whitelisted, skipping scan", "url", opts.URL)
		report.Whitelisted = true
		for i, el := range elements {
			report.Findings[i] = Finding{Element: el, Skipped: true}
			notify(opts, report.Findings[i])
		}
		report.Run.Skipped = len(elements)
		report.Run.FinishedAt = time.Now()
		return report, nil
	}

	type job struct {
		element Element
		pos     int
	}
	type done struct {
		finding Finding
		pos     int
	}

	workers := max(opts.Workers, 1)

	jobs := make(chan job, len(elements))
	for i, el := range elements {
		jobs <- job{pos: i, element: el}
	}
	close(jobs)

	results := make(chan done, len(elements))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- done{pos: j.pos, finding: evaluate(ev, j.element, opts)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		report.Findings[r.pos] = r.finding
		notify(opts, r.finding)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, f := range report.Findings {
		report.Run.Tally(f.Classification, f.Skipped)
	}
	report.Run.FinishedAt = time.Now()

	slog.Debug("Scan complete",
		"source", source,
		"elements", report.Run.Elements,
		"blocked", report.Run.Blocked,
		"skipped", report.Run.Skipped)

	return report, nil
}

func evaluate(ev Evaluator, el Element, opts Options) Finding {
	if utf8.RuneCountInString(el.Text) < opts.MinLength {
		return Finding{Element: el, Skipped: true}
	}
	result, class := ev.Evaluate(el.Text, opts.Config)
	return Finding{Element: el, Result: result, Classification: class}
}

func notify(opts Options, f Finding) {
	if opts.OnFinding != nil {
		opts.OnFinding(f)
	}
}
