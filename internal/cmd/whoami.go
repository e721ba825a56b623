package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/guard"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		return guard.Private(app.Sessions, func() error {
			sess := app.Sessions.Get()
			fmt.Printf("Email:   %s\n", sess.Email)
			fmt.Printf("Role:    %s\n", sess.Role)
			fmt.Printf("User ID: %s\n", sess.UserID)
			return nil
		}, redirectToLogin)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
