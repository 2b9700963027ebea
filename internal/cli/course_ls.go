package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var courseLsUnplaced bool

var courseLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered courses",
	Long:  `Display all registered courses and the semester each is placed in.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.ListCourses(context.Background(), &engine.ListCoursesRequest{Unplaced: courseLsUnplaced})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		title := "Courses"
		if courseLsUnplaced {
			title = "Unplaced Courses"
		}
		PrintSection(cmd.OutOrStdout(), title)
		printCourses(cmd.OutOrStdout(), result.Courses)
		return nil
	},
}

func init() {
	courseLsCmd.Flags().BoolVar(&courseLsUnplaced, "unplaced", false, "Only list courses not placed in any semester")
}
