// Package prompt wraps interactive terminal prompts and gives cancellation a
// single well-known identity.
package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled reports that the user aborted an interactive prompt. Call sites
// must treat it as a clean termination, never as a failure.
var ErrCancelled = errors.New("prompt cancelled by user")

// Asker asks questions on the controlling terminal.
type Asker struct{}

// New returns a terminal-backed Asker.
func New() *Asker {
	return &Asker{}
}

// Input prompts for a single line of text. A nil validate accepts any answer,
// including an empty one; otherwise the prompt re-asks until validate returns
// nil.
func (a *Asker) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	opts := []survey.AskOpt{}
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	q := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

// Confirm asks a yes/no question and returns the answer.
func (a *Asker) Confirm(message string, defaultValue bool) (bool, error) {
	var answer bool
	q := &survey.Confirm{Message: message, Default: defaultValue}
	if err := survey.AskOne(q, &answer); err != nil {
		return false, translate(err)
	}
	return answer, nil
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCancelled
	}
	return err
}
