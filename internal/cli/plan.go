package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Place courses into semesters",
	Long: `Place courses into the six semesters of the study plan.

Semesters are numbered 1-6. Odd semesters are autumn (høst), even semesters
are spring (vår). A semester holds at most 30 stp.`,
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the study plan",
	Long:  `Display every semester with its term, credit total and courses.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Show(context.Background(), &engine.ShowRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSection(cmd.OutOrStdout(), "Study Plan")
		PrintLabelValue(cmd.OutOrStdout(), "File", result.PlanFile)
		PrintInfo(cmd.OutOrStdout(), "")
		printSemesters(cmd.OutOrStdout(), result.Semesters)
		return nil
	},
}

func init() {
	planCmd.AddCommand(planPlaceCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planClearCmd)
	planCmd.AddCommand(planShowCmd)
}
