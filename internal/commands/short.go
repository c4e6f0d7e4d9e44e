package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/fatih/color"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
	"github.com/shortenit/shortenit-cli/internal/api/modeldto"
)

// ShortOptions carries the flags accepted by the short command.
type ShortOptions struct {
	CustomAlias    string
	ExpirationDays string
	Title          string
	PrintQR        bool
	SaveQR         bool
}

// Short creates a shortened link, attaching the page title fetched up front.
type Short struct {
	client APIClient
	titles TitleFetcher
	qr     QRRenderer
	out    io.Writer
}

// NewShort wires a Short orchestrator.
func NewShort(client APIClient, titles TitleFetcher, qr QRRenderer, out io.Writer) *Short {
	return &Short{client: client, titles: titles, qr: qr, out: out}
}

// Execute runs the phases in order: validate input, resolve the title,
// create the link, display, optional QR rendering. A title failure aborts
// before any create request is sent.
func (c *Short) Execute(ctx context.Context, longURL string, opts ShortOptions) error {
	if _, err := url.ParseRequestURI(longURL); err != nil {
		fmt.Fprintln(c.out, color.RedString("Not a valid URL: %s", longURL))
		return reported(err)
	}

	pageTitle := opts.Title
	if pageTitle == "" {
		s := newSpinner(c.out, "Fetching page title...")
		fetched, err := c.titles.FetchTitle(ctx, longURL)
		if err != nil {
			stopFail(s, "Failed to fetch page title")
			fmt.Fprintln(c.out, color.RedString(err.Error()))
			return reported(err)
		}
		stopOK(s, "Page title retrieved!")
		pageTitle = fetched
	}

	s := newSpinner(c.out, "Creating shortened link...")
	result, err := c.client.ShortenURL(ctx, modeldto.ShortenRequest{
		OriginalURL:    longURL,
		Title:          pageTitle,
		CustomAlias:    opts.CustomAlias,
		ExpirationDays: opts.ExpirationDays,
	})
	if err != nil {
		stopFail(s, "Failed to shorten URL")
		var conflict *apierrors.ConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(c.out, color.RedString("Custom alias %q is already taken, choose another one", conflict.Alias))
		} else {
			reportError(c.out, err)
		}
		return reported(err)
	}
	stopOK(s, "Link shortened successfully!")

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bold("Short URL:   "), color.GreenString(result.ShortURL))
	if result.Title != "" {
		fmt.Fprintln(c.out, bold("Title:       "), color.GreenString(result.Title))
	}
	if result.ExpiresAt != nil {
		fmt.Fprintln(c.out, bold("Expires At:  "), color.GreenString(result.ExpiresAt.Format("02/01/2006")))
	}
	fmt.Fprintln(c.out)

	if opts.PrintQR {
		fmt.Fprintln(c.out, bold("QR Code:"))
		fmt.Fprintln(c.out)
		c.qr.PrintToTerminal(c.out, result.ShortURL)
		fmt.Fprintln(c.out)
	}
	if opts.SaveQR {
		path, err := c.qr.SaveToDownloads(result.ShortURL, result.ShortCode)
		if err != nil {
			fmt.Fprintln(c.out, color.RedString("Failed to save QR code: %s", err))
			return reported(err)
		}
		fmt.Fprintln(c.out, bold("QR saved to: "), color.GreenString(path))
	}
	return nil
}
