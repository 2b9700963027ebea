package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var planClearForce bool

var planClearCmd = &cobra.Command{
	Use:   "clear <semester>",
	Short: "Remove every course from a semester",
	Long: `Remove every course from a semester. The courses stay registered.

You'll be asked to confirm unless --force is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		semester, err := parseSemester(args[0])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		if !planClearForce {
			show, err := eng.Show(ctx, &engine.ShowRequest{})
			if err != nil {
				return err
			}
			if semester >= 1 && semester <= len(show.Semesters) {
				count := len(show.Semesters[semester-1].Courses)
				if count > 0 {
					prompt := fmt.Sprintf("Remove %s from semester %d?", PrintCount(count, "course", "courses"), semester)
					if !promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt) {
						return fmt.Errorf("clear cancelled by user")
					}
				}
			}
		}

		result, err := eng.ClearSemester(ctx, &engine.ClearSemesterRequest{Semester: semester})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		if len(result.Removed) == 0 {
			PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("Semester %d is already empty", semester))
			return nil
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Cleared semester %d", semester))
		items := make([]string, 0, len(result.Removed))
		for _, c := range result.Removed {
			items = append(items, describeCourse(c))
		}
		PrintList(cmd.OutOrStdout(), items, 1)
		return nil
	},
}

func init() {
	planClearCmd.Flags().BoolVarP(&planClearForce, "force", "f", false, "Clear without confirmation")
}
