// Package title resolves the HTML title of a page about to be shortened.
package title

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	fetchTimeout = 10 * time.Second
	userAgent    = "Mozilla/5.0 (compatible; ShortenitCLI/1.0)"
)

// ErrNoTitle reports a page that was fetched successfully but carries no
// non-empty <title> element.
var ErrNoTitle = errors.New("no title found on the page")

// Fetcher retrieves page titles with a single bounded attempt and no retries.
type Fetcher struct {
	rest *resty.Client
	log  *slog.Logger
}

// NewFetcher builds a Fetcher with a fixed timeout and identifying user agent.
func NewFetcher(log *slog.Logger) *Fetcher {
	rest := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", userAgent)
	return &Fetcher{rest: rest, log: log}
}

// FetchTitle returns the trimmed text of the first <title> element under
// <head> of the page at pageURL.
func (f *Fetcher) FetchTitle(ctx context.Context, pageURL string) (string, error) {
	res, err := f.rest.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page title: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("failed to fetch page title: server returned status %d", res.StatusCode())
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}
	text := strings.TrimSpace(doc.Find("head > title").First().Text())
	if text == "" {
		return "", ErrNoTitle
	}
	f.log.Debug("fetched page title", slog.String("url", pageURL), slog.String("title", text))
	return text, nil
}
