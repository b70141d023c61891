// Package cli provides the Cobra-based commands of shapecli: authentication
// (login, logout, whoami), the profile-setup wizard, and the nutrition-plan
// and product browsing commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shapecli",
	Short: "SheShape fitness platform CLI",
	Long: `shapecli is the terminal client for the SheShape fitness platform.

Log in, complete your profile with the interactive setup wizard, and browse
nutrition plans and the shop without leaving the terminal.`,
	Example: `  # Log in with your account
  shapecli login ana@example.com

  # Complete your fitness profile
  shapecli setup

  # Browse active nutrition plans
  shapecli plans list --active

  # Search the shop
  shapecli products list --search protein`,
	SilenceUsage: true,
}

// Execute runs the root command. The version string is injected at build
// time by the main package.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file")
}

// configPath returns the --config flag value.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
