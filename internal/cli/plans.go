package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Browse and manage nutrition plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nutrition plans",
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

		activeOnly, _ := cmd.Flags().GetBool("active")
		plans, err := a.client.ListNutritionPlans(cmd.Context(), activeOnly)
		if err != nil {
			return err
		}

		if len(plans) == 0 {
			fmt.Println("No nutrition plans found")
			return nil
		}
		for _, plan := range plans {
			status := " "
			if plan.IsActive {
				status = "*"
			}
			fmt.Printf("%s %4d  %-30s  %2d weeks  %8.2f\n",
				status, plan.ID, plan.Title, plan.DurationWeeks, plan.Price)
		}
		return nil
	},
}

var plansActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make a plan visible to clients",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanToggle(true),
}

var plansDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Hide a plan from clients",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanToggle(false),
}

func runPlanToggle(activate bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid plan id %q", args[0])
		}

		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireLogin(); err != nil {
			return err
		}

		if activate {
			err = a.client.ActivateNutritionPlan(cmd.Context(), id)
		} else {
			err = a.client.DeactivateNutritionPlan(cmd.Context(), id)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Plan %d updated\n", id)
		return nil
	}
}

func init() {
	plansListCmd.Flags().Bool("active", false, "Only show active plans")
	plansCmd.AddCommand(plansListCmd, plansActivateCmd, plansDeactivateCmd)
	rootCmd.AddCommand(plansCmd)
}
