package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/authz"
	"github.com/Devduttshar/eventPlanner/internal/events"
	"github.com/Devduttshar/eventPlanner/internal/guard"
	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var (
	createFields events.Fields
	createImage  string
)

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event (admin)",
	Long: `Create an event. Requires an admin account.

An image is mandatory on creation. Without flags the command opens an
interactive form.

Examples:
  eventplanner events create
  eventplanner events create --title "Launch" --description "Release party" \
    --date 2026-09-12 --start 18:00 --end 22:00 --location "Berlin" \
    --image ./poster.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			if err := authz.RequireAdmin(app.Sessions.Role(), authz.ActionCreate); err != nil {
				return err
			}

			fields, imagePath := createFields, createImage
			if fields.Title == "" && tui.IsInteractive() {
				if err := tui.EventForm(&fields, &imagePath, true); err != nil {
					return err
				}
			}
			if err := fields.Validate(); err != nil {
				return err
			}

			img, err := openImage(imagePath)
			if err != nil {
				return err
			}

			ev, err := app.Events.Create(cmd.Context(), fields, img)
			if err != nil {
				return err
			}

			fmt.Printf("Created event %s (%s)\n", ev.Title, ev.ID)
			return nil
		}, redirectToLogin)
	},
}

// openImage opens the file at path as an event image submission.
// An empty path yields nil; the service decides whether that is allowed.
func openImage(path string) (*events.ImageFile, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return &events.ImageFile{Name: filepath.Base(path), Content: f}, nil
}

func eventFieldFlags(cmd *cobra.Command, fields *events.Fields, image *string) {
	cmd.Flags().StringVar(&fields.Title, "title", "", "event title")
	cmd.Flags().StringVar(&fields.Description, "description", "", "event description")
	cmd.Flags().StringVar(&fields.Date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fields.StartTime, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&fields.EndTime, "end", "", "end time (HH:MM)")
	cmd.Flags().StringVar(&fields.Location, "location", "", "event location")
	cmd.Flags().StringVar(image, "image", "", "path to the event image")
}

func init() {
	eventFieldFlags(eventsCreateCmd, &createFields, &createImage)
	eventsCmd.AddCommand(eventsCreateCmd)
}
