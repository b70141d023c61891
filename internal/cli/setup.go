package cli

import (
	"github.com/spf13/cobra"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard"
	"github.com/sheshape/shapecli/internal/onboarding"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the interactive profile-setup wizard",
	Long: `Walks through the four profile sections (personal info, fitness profile,
health info, preferences), validates as you go, and submits the completed
profile. Only first and last name are required; everything else can be
skipped and filled in later.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configPath(cmd), true)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireLogin(); err != nil {
			return err
		}

		scope := onboarding.ScopeWholeDraft
		if sectionOnly, _ := cmd.Flags().GetBool("section-gate"); sectionOnly {
			scope = onboarding.ScopeActiveSection
		}

		submitter := onboarding.NewSubmitter(a.client, a.log)
		return wizard.Run(submitter, scope, a.log)
	},
}

func init() {
	setupCmd.Flags().Bool("section-gate", false,
		"Only validate the section being left when moving forward")
	rootCmd.AddCommand(setupCmd)
}
