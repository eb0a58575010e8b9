package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/ppiankov/jorfcheck/internal/model"
)

// Discoverer lists candidate gazette documents for a year
type Discoverer interface {
	Discover(ctx context.Context, year int) ([]string, error)
}

// ListingDiscoverer scrapes the yearly Journal Officiel listing page
type ListingDiscoverer struct {
	fetcher     *Fetcher
	baseURL     string
	listingPath string
	keywords    []string
}

// NewListingDiscoverer creates a discoverer for the configured gazette site
func NewListingDiscoverer(fetcher *Fetcher, cfg model.GazetteConfig) *ListingDiscoverer {
	keywords := make([]string, 0, len(cfg.Keywords))
	for _, k := range cfg.Keywords {
		keywords = append(keywords, strings.ToLower(k))
	}
	return &ListingDiscoverer{
		fetcher:     fetcher,
		baseURL:     cfg.BaseURL,
		listingPath: cfg.ListingPath,
		keywords:    keywords,
	}
}

// ListingURL returns the listing page address for year
func (d *ListingDiscoverer) ListingURL(year int) string {
	return d.baseURL + fmt.Sprintf(d.listingPath, year)
}

// Discover fetches the listing for year and returns base URL + href for every
// anchor whose text mentions one of the keywords, in document order.
func (d *ListingDiscoverer) Discover(ctx context.Context, year int) ([]string, error) {
	result, err := d.fetcher.Fetch(ctx, d.ListingURL(year))
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(result.Body))
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	var urls []string
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := attr(n, "href"); ok && d.relevant(strings.ToLower(textContent(n))) {
				urls = append(urls, d.baseURL+href)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return urls, nil
}

func (d *ListingDiscoverer) relevant(text string) bool {
	for _, k := range d.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute and whether it is present
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// textContent concatenates every descendant text node
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
