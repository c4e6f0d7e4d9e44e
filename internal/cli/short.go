package cli

import (
	"github.com/spf13/cobra"

	"github.com/shortenit/shortenit-cli/internal/commands"
	"github.com/shortenit/shortenit-cli/internal/service/qr"
	"github.com/shortenit/shortenit-cli/internal/service/title"
)

func (a *app) newShortCommand() *cobra.Command {
	var opts commands.ShortOptions
	cmd := &cobra.Command{
		Use:     "short <url>",
		Short:   "Create a shortened link",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.ensureClient,
		RunE: func(cmd *cobra.Command, args []string) error {
			short := commands.NewShort(a.client, title.NewFetcher(a.log), qr.NewRenderer(), a.out)
			return short.Execute(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.CustomAlias, "custom-alias", "", "request a specific short code")
	cmd.Flags().StringVar(&opts.ExpirationDays, "expiration-days", "", "expire the link after this many days")
	cmd.Flags().StringVar(&opts.Title, "title", "", "use this title instead of fetching it from the page")
	cmd.Flags().BoolVar(&opts.PrintQR, "print-qr", false, "print a QR code for the short URL")
	cmd.Flags().BoolVar(&opts.SaveQR, "save-qr", false, "save a QR code PNG to your downloads folder")
	return cmd
}
