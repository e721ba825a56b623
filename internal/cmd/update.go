package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/authz"
	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/guard"
	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var (
	updateFields events.Fields
	updateImage  string
)

var eventsUpdateCmd = &cobra.Command{
	Use:   "update <event-id>",
	Short: "Update an event (admin)",
	Long: `Update an event. Requires an admin account.

The current field values are loaded from the server and pre-filled;
pass flags to override them directly, or use the interactive form.
The image is only replaced when --image is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			if err := authz.RequireAdmin(app.Sessions.Role(), authz.ActionUpdate); err != nil {
				return err
			}

			id := args[0]
			fields, imagePath := updateFields, updateImage

			if fields.Title == "" {
				current, err := findEvent(cmd, app, id)
				if err != nil {
					return err
				}
				fields = events.Fields{
					Title:       current.Title,
					Description: current.Description,
					Date:        current.Date,
					StartTime:   current.StartTime,
					EndTime:     current.EndTime,
					Location:    current.Location,
				}
				if tui.IsInteractive() {
					if err := tui.EventForm(&fields, &imagePath, false); err != nil {
						return err
					}
				}
			}
			if err := fields.Validate(); err != nil {
				return err
			}

			img, err := openImage(imagePath)
			if err != nil {
				return err
			}

			ev, err := app.Events.Update(cmd.Context(), id, fields, img)
			if err != nil {
				return err
			}

			fmt.Printf("Updated event %s (%s)\n", ev.Title, ev.ID)
			return nil
		}, redirectToLogin)
	},
}

// findEvent resolves one event by ID from the current listing.
func findEvent(cmd *cobra.Command, app *app, id string) (events.Event, error) {
	list, err := app.Events.List(cmd.Context())
	if err != nil {
		return events.Event{}, err
	}
	for _, ev := range list {
		if ev.ID == id {
			return ev, nil
		}
	}
	return events.Event{}, fmt.Errorf("event %s not found", id)
}

func init() {
	eventFieldFlags(eventsUpdateCmd, &updateFields, &updateImage)
	eventsCmd.AddCommand(eventsUpdateCmd)
}
