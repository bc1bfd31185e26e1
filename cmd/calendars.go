package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/freeslots/internal/calendar"
)

func newCalendarsCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars the account has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !calendar.HasTokenForAccount(account) {
				return fmt.Errorf("no Google Calendar token for account %q; run 'freeslots auth --account %s' first", account, account)
			}

			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			calendars, err := client.ListCalendars(ctx)
			if err != nil {
				return fmt.Errorf("failed to list calendars: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, cal := range calendars {
				marker := " "
				if cal.Primary {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-40s %s\n", marker, cal.ID, cal.Summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}
