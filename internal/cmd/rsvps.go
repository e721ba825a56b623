package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/authz"
	"github.com/Devduttshar/eventPlanner/internal/guard"
)

var eventsRsvpsCmd = &cobra.Command{
	Use:   "rsvps <event-id>",
	Short: "Show the attendee list of an event (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			if err := authz.RequireAdmin(app.Sessions.Role(), authz.ActionRsvps); err != nil {
				return err
			}

			attendees, err := app.Events.Rsvps(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(attendees) == 0 {
				fmt.Println("No RSVPs yet")
				return nil
			}

			for _, a := range attendees {
				fmt.Printf("%-10s %s <%s>  %s\n",
					a.Status, a.User.Name, a.User.Email,
					a.RespondedAt.Format("2006-01-02 15:04"))
			}
			return nil
		}, redirectToLogin)
	},
}

func init() {
	eventsCmd.AddCommand(eventsRsvpsCmd)
}
