package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the freeslots application
var rootCmd = &cobra.Command{
	Use:   "freeslots",
	Short: "Finds open meeting windows in your Google Calendar",
	Long: `freeslots computes your availability for the coming days from Google
Calendar: it overlays your commitments on your working hours, pads every
event with a buffer, drops fragments too short for a real meeting, and
prints the result in the attendee's timezone, ready to paste into an email.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "freeslots version %s\n" .Version}}`)

	// If no subcommand is provided, run the find command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "find")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("freeslots version %s\n", version)
		},
	}
}

func init() {
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
