// Package commands implements the per-invocation orchestrators behind each
// CLI command. Every orchestrator runs its phases strictly in sequence,
// prints its own user-facing messages, and returns a ReportedError so the
// entry point can exit non-zero without printing twice.
package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	apierrors "github.com/shortenit/shortenit-cli/internal/api/errors"
)

// ReportedError marks an error whose message was already shown to the user.
// The entry point exits 1 on it without further output.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

func reported(err error) error {
	return &ReportedError{Err: err}
}

func newSpinner(w io.Writer, message string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return s
}

func stopOK(s *spinner.Spinner, message string) {
	s.FinalMSG = color.GreenString("✔ %s\n", message)
	s.Stop()
}

func stopFail(s *spinner.Spinner, message string) {
	s.FinalMSG = color.RedString("✖ %s\n", message)
	s.Stop()
}

func bold(text string) string {
	return color.New(color.Bold).Sprint(text)
}

// reportError prints a condition-specific message for an API client failure.
// Not-found and conflict get dedicated wording at their call sites; this is
// the shared tail of the classification.
func reportError(w io.Writer, err error) {
	var (
		srvMsg    *apierrors.ServerMessageError
		authErr   *apierrors.AuthError
		transport *apierrors.TransportError
	)
	switch {
	case errors.As(err, &srvMsg):
		fmt.Fprintln(w, color.RedString(srvMsg.Msg))
	case errors.As(err, &authErr):
		fmt.Fprintln(w, color.RedString("Authentication failed: check your API key with \"shortenit config --show\""))
	case errors.As(err, &transport):
		fmt.Fprintln(w, color.RedString("Could not reach the backend: %s", transport.Err))
	default:
		fmt.Fprintln(w, color.RedString(err.Error()))
	}
}
