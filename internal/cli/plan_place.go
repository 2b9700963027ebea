package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/plan"
)

var planPlaceCmd = &cobra.Command{
	Use:   "place <code|id> <semester>",
	Short: "Place a course in a semester",
	Long: `Place a course in a semester (1-6).

The semester must match the course term and must not go over 30 stp.
A course can only be in one semester at a time.

Example:
  studyplan plan place DAT120 1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		semester, err := parseSemester(args[1])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.PlaceCourse(context.Background(), &engine.PlaceCourseRequest{
			Course:   args[0],
			Semester: semester,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Placed %s in semester %d", result.Course.Code, semester))
		PrintLabelValue(cmd.OutOrStdout(), "Semester total", fmt.Sprintf("%d/%d stp", result.SemesterCredits, plan.MaxSlotCredits))
		return nil
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <code|id> <semester>",
	Short: "Take a course out of a semester",
	Long: `Take a course out of a semester. The course stays registered.

Nothing changes if the course is not in that semester.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		semester, err := parseSemester(args[1])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.RemoveCourse(context.Background(), &engine.RemoveCourseRequest{
			Course:   args[0],
			Semester: semester,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		if !result.Removed {
			PrintWarning(cmd.OutOrStdout(), fmt.Sprintf("%s is not in semester %d", result.Course.Code, semester))
			return nil
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed %s from semester %d", result.Course.Code, semester))
		return nil
	},
}
