package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var (
	initSeed  bool
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new plan file",
	Long: `Create a new, empty plan file.

With --seed the plan starts with a catalogue of example courses.
An existing plan file is only replaced when --force is used.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSeed, "seed", false, "Register the example courses")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Replace an existing plan file")
}

func runInit(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	result, err := eng.Init(context.Background(), &engine.InitRequest{
		Seed:  initSeed,
		Force: initForce,
	})
	if errors.Is(err, engine.ErrPlanExists) {
		return fmt.Errorf("%w\nUse --force to replace it", err)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	if result.Overwritten {
		PrintWarning(out, fmt.Sprintf("Replaced existing plan at %s", result.PlanFile))
	} else {
		PrintSuccess(out, fmt.Sprintf("Created plan at %s", result.PlanFile))
	}
	if len(result.Seeded) > 0 {
		PrintInfo(out, fmt.Sprintf("Registered %s", PrintCount(len(result.Seeded), "example course", "example courses")))
	}
	PrintInfo(out, "")
	PrintInfo(out, "Next steps:")
	PrintNumberedList(out, []string{
		"Add a course:      studyplan course add <code> <høst|vår> <stp>",
		"Place it:          studyplan plan place <code> <semester>",
		"Check the plan:    studyplan validate",
	}, 1)

	return nil
}
