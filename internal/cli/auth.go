package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheshape/shapecli/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		var password string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("password is required")
						}
						return nil
					}),
			),
		).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		session, err := a.client.Login(cmd.Context(), args[0], password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		stored := config.StoredSession{
			Token: session.Token,
			Email: session.User.Email,
			Role:  session.User.Role,
		}
		if err := config.SaveSession(a.cfg.StateDir, stored); err != nil {
			return err
		}

		a.log.Info("logged in", zap.String("email", session.User.Email))
		fmt.Printf("Logged in as %s\n", session.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := config.ClearSession(a.cfg.StateDir); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account for the active session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireLogin(); err != nil {
			return err
		}

		user, err := a.client.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
