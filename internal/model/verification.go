package model

import "time"

// MatchResult is what a caller of a verification sees
type MatchResult struct {
	Found bool   `json:"found"`
	Line  string `json:"line"` // Matched line, empty when not found
	URL   string `json:"url"`  // Source document, empty when not found
}

// Verification is the full record of one lookup. The embedded MatchResult is the
// collapsed external answer; the remaining fields are diagnostics.
type Verification struct {
	MatchResult

	Surname   string `json:"surname"`    // Normalized surname
	GivenName string `json:"given_name"` // Normalized given name
	Year      int    `json:"year"`

	Outcome        Outcome   `json:"outcome"`
	DiscoveryError string    `json:"discovery_error,omitempty"`
	Candidates     []string  `json:"candidates"`
	Attempts       []Attempt `json:"attempts"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// Outcome distinguishes the reasons a verification ended
type Outcome string

const (
	OutcomeFound           Outcome = "found"            // A line matched
	OutcomeNotFound        Outcome = "not_found"        // Documents were read, no line matched
	OutcomeNoCandidates    Outcome = "no_candidates"    // Listing fetched but no gazette links matched
	OutcomeDiscoveryFailed Outcome = "discovery_failed" // Listing could not be fetched or parsed
	OutcomeDocumentsFailed Outcome = "documents_failed" // Every candidate failed extraction
)

// Attempt records what happened to one candidate URL
type Attempt struct {
	URL     string     `json:"url"`
	Source  TextSource `json:"source,omitempty"`
	Pages   int        `json:"pages,omitempty"`
	Chars   int        `json:"chars"`
	Matched bool       `json:"matched"`
	Error   string     `json:"error,omitempty"`
}

// Failed reports whether the candidate was skipped because extraction failed
func (a Attempt) Failed() bool {
	return a.Error != ""
}

// TextSource names the strategy that produced a document's text
type TextSource string

const (
	SourceTextLayer TextSource = "text_layer"
	SourceOCR       TextSource = "ocr"
	SourceCached    TextSource = "cached" // Repeated candidate within one verification
)

// FetchMeta contains HTTP metadata from fetching a document
type FetchMeta struct {
	StatusCode   int    `json:"status_code"`
	ContentType  string `json:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty"`
}
