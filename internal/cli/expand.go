package cli

import (
	"github.com/spf13/cobra"

	"github.com/shortenit/shortenit-cli/internal/commands"
)

func (a *app) newExpandCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "expand <short-url-or-code>",
		Short:   "Resolve a short link back to its original URL",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.ensureClient,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewExpand(a.client, a.out).Execute(cmd.Context(), args[0])
		},
	}
}
