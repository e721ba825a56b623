package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eventplanner",
	Short: "Terminal client for the eventPlanner API",
	Long: `eventplanner is a terminal client for the eventPlanner REST API.
Authenticated users can browse events and RSVP; admins can create, edit
and delete events and download RSVP reports. Your session is kept in
~/.eventplanner and attached to every request automatically.`,
	SilenceUsage: true,
}

var (
	flagVerbose   bool
	flagConfigDir string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "client state directory (default ~/.eventplanner)")
}
