package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/authz"
	"github.com/Devduttshar/eventPlanner/internal/guard"
	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var deleteYes bool

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete an event (admin)",
	Long: `Delete an event and its RSVPs. Requires an admin account.

Asks for confirmation in interactive mode; pass --yes to skip.`,
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
			if err := authz.RequireAdmin(app.Sessions.Role(), authz.ActionDelete); err != nil {
				return err
			}

			id := args[0]
			if !deleteYes {
				if !tui.IsInteractive() {
					return fmt.Errorf("--yes is required in non-interactive mode")
				}
				ev, err := findEvent(cmd, app, id)
				if err != nil {
					return err
				}
				ok, err := tui.ConfirmDelete(ev.Title)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Events.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Printf("Deleted event %s\n", id)
			return nil
		}, redirectToLogin)
	},
}

func init() {
	eventsDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
	eventsCmd.AddCommand(eventsDeleteCmd)
}
