package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var eventsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive events browser",
	Long: `Open the interactive events browser.

The listing is public. RSVP keys require a login and delete requires
an admin account; the browser tells you when a key is unavailable.

Keys:
  g/m/n   RSVP going / maybe / not going on the selected event
  d       delete the selected event (admin)
  r       refresh the listing
  q       quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}
		if !tui.IsInteractive() {
			return fmt.Errorf("browse needs a terminal; use 'eventplanner events list' instead")
		}

		browser := tui.NewBrowser(app.Events, app.Sessions)
		_, err = tea.NewProgram(browser, tea.WithContext(cmd.Context())).Run()
		return err
	},
}

func init() {
	eventsCmd.AddCommand(eventsBrowseCmd)
}
