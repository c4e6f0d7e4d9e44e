package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
	"github.com/shortenit/shortenit-cli/internal/prompt"
	"github.com/shortenit/shortenit-cli/pkg/urlref"
)

// Delete removes a stored link after interactive confirmation.
type Delete struct {
	client  APIClient
	confirm Confirmer
	out     io.Writer
}

// NewDelete wires a Delete orchestrator.
func NewDelete(client APIClient, confirm Confirmer, out io.Writer) *Delete {
	return &Delete{client: client, confirm: confirm, out: out}
}

// Execute confirms and deletes ref. A declined or cancelled confirmation
// performs no network call and is a clean, successful termination.
func (c *Delete) Execute(ctx context.Context, ref string) error {
	code := urlref.Normalize(ref)

	ok, err := c.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete the short URL %q?", code), false)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(c.out, color.YellowString("\nDeletion cancelled."))
			return nil
		}
		fmt.Fprintln(c.out, color.RedString(err.Error()))
		return reported(err)
	}
	if !ok {
		fmt.Fprintln(c.out, color.YellowString("\nDeletion cancelled."))
		return nil
	}

	s := newSpinner(c.out, "Deleting URL...")
	if err := c.client.DeleteURL(ctx, code); err != nil {
		stopFail(s, "Failed to delete URL")
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(c.out, color.RedString("URL not found or you do not have permission to delete it"))
		} else {
			reportError(c.out, err)
		}
		return reported(err)
	}
	stopOK(s, fmt.Sprintf("URL %q deleted successfully!", code))
	return nil
}
