package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var courseAddCmd = &cobra.Command{
	Use:   "add <code> <term> <credits>",
	Short: "Register a new course",
	Long: `Register a new course.

The term is høst (autumn) or vår (spring); the English names autumn, fall
and spring are accepted too. Codes are unique regardless of case.

Example:
  studyplan course add DAT120 høst 10`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		credits, err := parseCredits(args[2])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.AddCourse(context.Background(), &engine.AddCourseRequest{
			Code:    args[0],
			Term:    args[1],
			Credits: credits,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		c := result.Course
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added course %s with id %d", describeCourse(c), c.ID))
		PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("  Can be placed in semester %s", c.Term.AllowedSlots()))
		return nil
	},
}
