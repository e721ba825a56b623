package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/guard"
	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Log in against the eventPlanner API.

On success the bearer token, role and identity are stored in the client
state directory and attached to every subsequent request. If you are
already logged in the command redirects you to the events overview
instead; log out first to switch accounts.

Examples:
  eventplanner login
  eventplanner login --email you@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Open(app.Sessions, func() error {
			email, password := loginEmail, loginPassword
			if email == "" || password == "" {
				if !tui.IsInteractive() {
					return fmt.Errorf("--email and --password are required in non-interactive mode")
				}
				if err := tui.LoginForm(&email, &password); err != nil {
					return err
				}
			}

			sess, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", sess.Email, sess.Role)
			return nil
		}, redirectToLanding)
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
