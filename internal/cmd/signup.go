package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Devduttshar/eventPlanner/internal/guard"
	"github.com/Devduttshar/eventPlanner/internal/session"
	"github.com/Devduttshar/eventPlanner/internal/tui"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
	signupRole     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long: `Register a new account against the eventPlanner API.

Signing up does not log you in; run 'eventplanner login' afterwards.

Examples:
  eventplanner signup
  eventplanner signup --name Ada --email ada@example.com --password secret --role user`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAPI(); err != nil {
			return err
		}

		return guard.Open(app.Sessions, func() error {
			name, email, password := signupName, signupEmail, signupPassword
			role := session.Role(signupRole)

			if name == "" || email == "" || password == "" {
				if !tui.IsInteractive() {
					return fmt.Errorf("--name, --email and --password are required in non-interactive mode")
				}
				if err := tui.SignupForm(&name, &email, &password, &role); err != nil {
					return err
				}
			}
			if role == "" {
				role = session.RoleUser
			}

			if err := app.Auth.Signup(cmd.Context(), name, email, password, role); err != nil {
				return err
			}

			fmt.Printf("Account created for %s. Run 'eventplanner login' to sign in.\n", email)
			return nil
		}, redirectToLanding)
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "account password")
	signupCmd.Flags().StringVar(&signupRole, "role", "user", "account role (user or admin)")
	rootCmd.AddCommand(signupCmd)
}
