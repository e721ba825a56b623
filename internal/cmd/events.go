package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/guard"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage events",
	Long: `Browse and manage events.

Commands:
  list     List all events
  mine     List events you have RSVP'd to
  browse   Open the interactive events browser
  create   Create an event (admin)
  update   Update an event (admin)
  delete   Delete an event (admin)
  rsvp     Set your RSVP on an event
  rsvps    Show the attendee list of an event (admin)
  report   Download the RSVP report of an event (admin)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all events",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		list, err := app.Events.List(cmd.Context())
		if err != nil {
			return err
		}

		printEvents(list, app.Sessions.Get().UserID)
		return nil
	},
}

var eventsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List events you have RSVP'd to",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			list, err := app.Events.ListMine(cmd.Context())
			if err != nil {
				return err
			}
			printEvents(list, app.Sessions.Get().UserID)
			return nil
		}, redirectToLogin)
	},
}

// printEvents renders a plain event listing. An empty collection is a
// valid state, shown as such.
func printEvents(list []events.Event, userID string) {
	if len(list) == 0 {
		fmt.Println("No events found")
		return
	}

	for _, ev := range list {
		fmt.Printf("%s  %s\n", ev.ID, ev.Title)
		fmt.Printf("   When:  %s %s-%s\n", ev.Date, ev.StartTime, ev.EndTime)
		fmt.Printf("   Where: %s\n", ev.Location)
		if mine := ev.RSVPFor(userID); mine != "" {
			fmt.Printf("   RSVP:  %s\n", mine)
		}
		fmt.Println()
	}
}

func init() {
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsMineCmd)
	rootCmd.AddCommand(eventsCmd)
}
