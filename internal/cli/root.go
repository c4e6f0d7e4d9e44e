// Package cli assembles the shortenit command tree and wires the
// collaborators each command needs.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shortenit/shortenit-cli/internal/api"
	"github.com/shortenit/shortenit-cli/internal/config"
	"github.com/shortenit/shortenit-cli/internal/prompt"
)

// version is stamped via -ldflags at release time.
var version = "dev"

type app struct {
	cfg    *config.Store
	asker  *prompt.Asker
	log    *slog.Logger
	out    io.Writer
	client *api.Client
}

// NewRootCommand builds the full shortenit command tree.
func NewRootCommand(log *slog.Logger) (*cobra.Command, error) {
	asker := prompt.New()
	cfg, err := config.New(asker, os.Stdout)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, asker: asker, log: log, out: os.Stdout}

	root := &cobra.Command{
		Use:           "shortenit",
		Short:         "CLI tool for the Shortenit URL shortener",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation: first run triggers setup, otherwise help.
			if !a.cfg.IsConfigured() {
				return a.cfg.EnsureConfigured()
			}
			return cmd.Help()
		},
	}
	root.AddCommand(
		a.newShortCommand(),
		a.newExpandCommand(),
		a.newListCommand(),
		a.newDeleteCommand(),
		a.newConfigCommand(),
	)
	return root, nil
}

// ensureClient gates network commands on a populated configuration and binds
// the API client to it.
func (a *app) ensureClient(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.EnsureConfigured(); err != nil {
		return err
	}
	a.client = api.New(a.cfg.BaseURL(), a.cfg.APIKey(), a.log)
	return nil
}
