package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) newConfigCommand() *cobra.Command {
	var reset, show bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case reset:
				return a.cfg.Reset()
			case show:
				a.cfg.Show(a.out)
				return nil
			default:
				return a.cfg.Setup()
			}
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "clear the stored configuration")
	cmd.Flags().BoolVar(&show, "show", false, "show the current configuration")
	return cmd
}
