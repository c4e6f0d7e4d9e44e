package cli

import (
	"github.com/spf13/cobra"

	"github.com/shortenit/shortenit-cli/internal/commands"
)

func (a *app) newListCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List your stored links",
		Args:    cobra.NoArgs,
		PreRunE: a.ensureClient,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewList(a.client, a.out).Execute(cmd.Context(), all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every link instead of the most recent ones")
	return cmd
}
