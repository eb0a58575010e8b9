// Package pipeline finds a person in the naturalisation decrees published in
// the Journal Officiel: discover the year's decrees, extract their text and
// look for a line naming the person.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ppiankov/jorfcheck/internal/cache"
	"github.com/ppiankov/jorfcheck/internal/match"
	"github.com/ppiankov/jorfcheck/internal/model"
	"github.com/ppiankov/jorfcheck/internal/ocr"
	"github.com/ppiankov/jorfcheck/internal/pdftext"
)

// Verifier orchestrates one verification end to end
type Verifier struct {
	discoverer Discoverer
	extractor  TextExtractor
	matcher    *match.Matcher
	logger     *slog.Logger
}

// NewVerifier creates a verifier from its collaborators
func NewVerifier(discoverer Discoverer, extractor TextExtractor, matcher *match.Matcher, logger *slog.Logger) *Verifier {
	if matcher == nil {
		matcher = match.DefaultMatcher()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		discoverer: discoverer,
		extractor:  extractor,
		matcher:    matcher,
		logger:     logger,
	}
}

// NewVerifierFromConfig wires the network, PDF and OCR stack described by cfg
func NewVerifierFromConfig(cfg *model.Config, logger *slog.Logger) (*Verifier, error) {
	if logger == nil {
		logger = slog.Default()
	}

	matcher, err := match.NewMatcherFromConfig(cfg.Match)
	if err != nil {
		return nil, fmt.Errorf("configure matcher: %w", err)
	}

	engine, err := ocr.NewEngine(cfg.OCR)
	if err != nil {
		return nil, fmt.Errorf("configure OCR: %w", err)
	}

	fetcher := NewFetcher(cfg.HTTP, logger)
	extractor := NewExtractor(
		fetcher,
		pdftext.NewReader(),
		pdftext.NewRasterizer(cfg.OCR.PdftoppmPath, cfg.OCR.DPI),
		engine,
	)

	return NewVerifier(NewListingDiscoverer(fetcher, cfg.Gazette), extractor, matcher, logger), nil
}

// memoEntry is the outcome of extracting one URL
type memoEntry struct {
	extraction *Extraction
	err        error
}

// Verify looks for surname and givenName in the decrees published in year.
// Failures never escape: a failed discovery reads as no candidates and a
// failed document is skipped. The first matching line wins.
func (v *Verifier) Verify(ctx context.Context, surname, givenName string, year int) *model.Verification {
	started := time.Now()
	result := &model.Verification{
		Surname:   match.NormalizeName(surname),
		GivenName: match.NormalizeName(givenName),
		Year:      year,
		StartedAt: started.UTC(),
	}
	defer func() { result.Duration = time.Since(started) }()

	log := v.logger.With("surname", result.Surname, "given_name", result.GivenName, "year", year)

	candidates, err := v.discoverer.Discover(ctx, year)
	if err != nil {
		log.Debug("discovery failed", "error", err)
		result.Outcome = model.OutcomeDiscoveryFailed
		result.DiscoveryError = err.Error()
		result.Candidates = []string{}
		result.Attempts = []model.Attempt{}
		return result
	}
	result.Candidates = append([]string{}, candidates...)
	result.Attempts = make([]model.Attempt, 0, len(candidates))

	if len(candidates) == 0 {
		log.Debug("no candidate documents")
		result.Outcome = model.OutcomeNoCandidates
		return result
	}

	memo := cache.NewMemo[memoEntry]()

	for _, url := range candidates {
		attempt := model.Attempt{URL: url}

		entry, cached := memo.Get(url)
		if !cached {
			ext, err := v.extractor.Extract(ctx, url)
			entry = memoEntry{extraction: ext, err: err}
			memo.Set(url, entry)
		}

		if entry.err != nil {
			attempt.Error = entry.err.Error()
			if cached {
				attempt.Source = model.SourceCached
			}
			result.Attempts = append(result.Attempts, attempt)
			log.Debug("skipping document", "url", url, "error", entry.err)
			continue
		}

		ext := entry.extraction
		attempt.Source = ext.Source
		if cached {
			attempt.Source = model.SourceCached
		}
		attempt.Pages = ext.Pages
		attempt.Chars = len([]rune(ext.Text))

		line, ok := v.matcher.FindLine(result.Surname, result.GivenName, ext.Text)
		attempt.Matched = ok
		result.Attempts = append(result.Attempts, attempt)

		log.Debug("document examined", "url", url, "source", attempt.Source, "pages", attempt.Pages, "matched", ok)

		if ok {
			result.Found = true
			result.Line = line
			result.URL = url
			result.Outcome = model.OutcomeFound
			return result
		}
	}

	result.Outcome = model.OutcomeNotFound
	if allFailed(result.Attempts) {
		result.Outcome = model.OutcomeDocumentsFailed
	}
	return result
}

func allFailed(attempts []model.Attempt) bool {
	for _, a := range attempts {
		if !a.Failed() {
			return false
		}
	}
	return len(attempts) > 0
}
