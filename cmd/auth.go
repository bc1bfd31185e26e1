package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/freeslots/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [AUTH_CODE]",
		Short: "Authorize read-only Google Calendar access",
		Long: `Authorize freeslots to read your Google Calendar.

Run without arguments to print the consent URL. Visit it in a browser, grant
access, and run the command again with the authorization code Google shows
you. The token is stored per account and refreshed automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if google.HasTokenForAccount(account) {
					fmt.Fprintf(cmd.OutOrStdout(), "Account %q is already authorized. Re-authorizing replaces the stored token.\n\n", account)
				}
				fmt.Fprintf(cmd.OutOrStdout(), `To authorize account %q, visit this URL in your browser:

  %s

Then run:

  freeslots auth --account %s AUTH_CODE
`, account, google.GetAuthURL(), account)
				return nil
			}

			if err := google.SaveTokenForAccount(context.Background(), account, args[0]); err != nil {
				return fmt.Errorf("failed to exchange authorization code for account %s: %w", account, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Authorization successful for account %q. Calendar token saved.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}
