package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/freeslots/internal/calendar"
	"github.com/teemow/freeslots/internal/config"
	"github.com/teemow/freeslots/internal/logging"
	"github.com/teemow/freeslots/internal/render"
	"github.com/teemow/freeslots/internal/schedule"
)

func newFindCmd() *cobra.Command {
	var (
		account     string
		calendarID  string
		homeTZ      string
		attendeeTZ  string
		days        int
		slotMinutes int
		output      string
		timeFormat  string
		nowStr      string
		save        bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Compute open meeting windows from Google Calendar",
		Long: `Compute your availability for the coming days.

Busy events are fetched from Google Calendar, padded with a buffer on both
sides, and subtracted from your working hours. Free windows shorter than 45
minutes are dropped. Results are printed in the attendee's timezone.

Flags override the persisted configuration; use --save to make the current
flags the new defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(config.DefaultDir())

			// Flags the caller did not set fall back to the persisted
			// configuration.
			if !cmd.Flags().Changed("calendar-id") {
				calendarID = cfg.CalendarID
			}
			if !cmd.Flags().Changed("home-tz") {
				homeTZ = cfg.HomeTZ
			}
			if !cmd.Flags().Changed("attendee-tz") {
				attendeeTZ = cfg.AttendeeTZ
			}
			if !cmd.Flags().Changed("days") {
				days = cfg.Days
			}
			if !cmd.Flags().Changed("slot-min") {
				slotMinutes = cfg.SlotMinutes
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Output
			}
			if !cmd.Flags().Changed("time-format") {
				timeFormat = cfg.TimeFormat
			}

			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			logger := logging.WithOperation(logging.NewLogger(level), "find")

			if output != "text" && output != "json" {
				return fmt.Errorf("invalid output format %q, must be text or json", output)
			}

			home, err := time.LoadLocation(homeTZ)
			if err != nil {
				return fmt.Errorf("unknown timezone %q: %w", homeTZ, err)
			}

			attendee, err := time.LoadLocation(attendeeTZ)
			if err != nil {
				return fmt.Errorf("unknown timezone %q: %w", attendeeTZ, err)
			}

			now := time.Now()
			if nowStr != "" {
				now, err = time.Parse(time.RFC3339, nowStr)
				if err != nil {
					return fmt.Errorf("invalid --now value %q, expected RFC3339: %w", nowStr, err)
				}
			}

			ctx := context.Background()

			if !calendar.HasTokenForAccount(account) {
				return fmt.Errorf("no Google Calendar token for account %q; run 'freeslots auth --account %s' first", account, account)
			}

			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			engine := schedule.NewEngine(home)
			horizonEnd := now.Add(time.Duration(days) * 24 * time.Hour)

			logger.Debug("fetching events",
				logging.Calendar(calendarID),
				slog.Time("from", now),
				slog.Time("to", horizonEnd),
			)

			busy, err := client.BusyEvents(ctx, calendarID, now, horizonEnd, engine.Home)
			if err != nil {
				return fmt.Errorf("failed to fetch calendar events: %w", err)
			}

			free, err := engine.Compute(schedule.Request{
				Now:         now,
				Days:        days,
				Attendee:    attendee,
				SlotMinutes: slotMinutes,
				Busy:        busy,
			})
			if err != nil {
				return fmt.Errorf("failed to compute availability: %w", err)
			}

			logger.Debug("computed availability",
				logging.AttendeeZone(attendeeTZ),
				slog.Int("busy_events", len(busy)),
				slog.Int("windows", len(free)),
			)

			res := render.Result{
				CalendarID:  calendarID,
				AttendeeTZ:  attendeeTZ,
				WindowStart: now.In(attendee),
				WindowEnd:   horizonEnd.In(attendee),
				SlotMinutes: slotMinutes,
				Use24Hour:   render.ResolveTimeFormat(timeFormat, attendeeTZ),
				Free:        free,
			}

			if output == "json" {
				out, err := render.JSON(res)
				if err != nil {
					return fmt.Errorf("failed to render result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), render.Text(res))
			}

			if save {
				cfg.CalendarID = calendarID
				cfg.HomeTZ = homeTZ
				cfg.AttendeeTZ = attendeeTZ
				cfg.Days = days
				cfg.SlotMinutes = slotMinutes
				cfg.Output = output
				cfg.TimeFormat = timeFormat
				if err := config.Save(config.DefaultDir(), cfg); err != nil {
					return fmt.Errorf("failed to save configuration: %w", err)
				}
				logger.Debug("saved configuration", slog.String("dir", config.DefaultDir()))
			}

			return nil
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	cmd.Flags().StringVar(&calendarID, "calendar-id", defaults.CalendarID, "Calendar to check")
	cmd.Flags().StringVar(&homeTZ, "home-tz", defaults.HomeTZ, "IANA timezone anchoring the working hours")
	cmd.Flags().StringVar(&attendeeTZ, "attendee-tz", defaults.AttendeeTZ, "IANA timezone for presenting results")
	cmd.Flags().IntVar(&days, "days", defaults.Days, "Look-ahead horizon in days, starting now")
	cmd.Flags().IntVar(&slotMinutes, "slot-min", defaults.SlotMinutes, "Cut availability into fixed slots of this many minutes (0 keeps windows continuous)")
	cmd.Flags().StringVar(&output, "output", defaults.Output, "Output format: text or json")
	cmd.Flags().StringVar(&timeFormat, "time-format", defaults.TimeFormat, "Clock style: auto, 12h or 24h")
	cmd.Flags().StringVar(&nowStr, "now", "", "Override the reference instant (RFC3339); defaults to the current time")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the effective settings as new defaults")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
