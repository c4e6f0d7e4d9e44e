package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
	"github.com/shortenit/shortenit-cli/pkg/urlref"
)

// Expand resolves a short code or short URL back to its original.
type Expand struct {
	client APIClient
	out    io.Writer
}

// NewExpand wires an Expand orchestrator.
func NewExpand(client APIClient, out io.Writer) *Expand {
	return &Expand{client: client, out: out}
}

// Execute resolves ref and prints the stored original URL and title.
func (c *Expand) Execute(ctx context.Context, ref string) error {
	code := urlref.Normalize(ref)
	s := newSpinner(c.out, "Fetching original URL...")
	record, err := c.client.ExpandURL(ctx, code)
	if err != nil {
		stopFail(s, "Failed to expand URL")
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(c.out, color.RedString("Short URL not found"))
		} else {
			reportError(c.out, err)
		}
		return reported(err)
	}
	stopOK(s, "Original URL retrieved!")

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bold("Original URL: "), color.GreenString(record.OriginalURL))
	if record.Title != "" {
		fmt.Fprintln(c.out, bold("Title:        "), color.GreenString(record.Title))
	}
	fmt.Fprintln(c.out)
	return nil
}
