package cli

import (
	"github.com/spf13/cobra"

	"github.com/shortenit/shortenit-cli/internal/commands"
)

func (a *app) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <short-url-or-code>",
		Short:   "Delete a stored link",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.ensureClient,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewDelete(a.client, a.asker, a.out).Execute(cmd.Context(), args[0])
		},
	}
}
