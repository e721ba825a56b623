package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long: `Clear the stored session.

The token, role and identity are removed together. Logging out never
calls the API; the server-side token simply stops being used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		if !app.Sessions.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if err := app.Auth.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
