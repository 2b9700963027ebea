package cli

import (
	"github.com/spf13/cobra"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage registered courses",
	Long: `Register, delete and list courses.

A course has a unique code, the term it is taught in (høst or vår) and a
credit value (stp). Courses are addressed by code or by numeric id.`,
}

func init() {
	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseRmCmd)
	courseCmd.AddCommand(courseLsCmd)
}
