package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/guard"
)

var eventsRsvpCmd = &cobra.Command{
	Use:   "rsvp <event-id> <going|maybe|not_going>",
	Short: "Set your RSVP on an event",
	Long: `Set your attendance response on an event.

Setting a new status replaces any previous response; there is never
more than one RSVP per event and account.

Examples:
  eventplanner events rsvp 68a1f0 going
  eventplanner events rsvp 68a1f0 not_going`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			id := args[0]
			status, err := events.ParseStatus(args[1])
			if err != nil {
				return err
			}

			if err := app.Events.SetRSVP(cmd.Context(), id, status); err != nil {
				return err
			}

			fmt.Printf("RSVP for event %s set to %s\n", id, status)
			return nil
		}, redirectToLogin)
	},
}

func init() {
	eventsCmd.AddCommand(eventsRsvpCmd)
}
