package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/shortenit/shortenit-cli/internal/cli"
	"github.com/shortenit/shortenit-cli/internal/commands"
	"github.com/shortenit/shortenit-cli/internal/logger"
	"github.com/shortenit/shortenit-cli/internal/prompt"
)

func main() {
	log := logger.New()
	root, err := cli.NewRootCommand(log)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
	if err := root.ExecuteContext(context.Background()); err != nil {
		// A cancelled prompt already printed its notice and is a clean exit.
		if errors.Is(err, prompt.ErrCancelled) {
			return
		}
		var alreadyShown *commands.ReportedError
		if !errors.As(err, &alreadyShown) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		}
		os.Exit(1)
	}
}
