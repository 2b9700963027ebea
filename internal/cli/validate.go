package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every semester has exactly 30 stp",
	Long: `Check the study plan. A plan is valid when every semester holds exactly 30 stp.

Exits with a non-zero status when the plan is not valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Validate(context.Background(), &engine.ValidateRequest{})
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else {
			printValidation(cmd.OutOrStdout(), result)
		}

		if !result.Valid {
			return errPlanInvalid
		}
		return nil
	},
}
