package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var courseRmCmd = &cobra.Command{
	Use:   "rm <code|id>",
	Short: "Delete a course",
	Long: `Delete a course permanently.

The course is also removed from the semester it is placed in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.DeleteCourse(context.Background(), &engine.DeleteCourseRequest{Course: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		c := result.Course
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Deleted course %s", describeCourse(c)))
		if c.Semester != 0 {
			PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("  Removed from semester %d", c.Semester))
		}
		return nil
	},
}
