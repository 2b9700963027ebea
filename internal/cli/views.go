package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/plan"
)

// errPlanInvalid is returned by validate so scripts see a non-zero exit.
var errPlanInvalid = errors.New("plan is not valid")

// describeCourse formats a course as "MAT100 (høst, 10 stp)".
func describeCourse(c engine.CourseInfo) string {
	return fmt.Sprintf("%s (%s, %d stp)", c.Code, c.Term, c.Credits)
}

func semesterLabel(number int) string {
	if number == 0 {
		return "-"
	}
	return strconv.Itoa(number)
}

// printCourses prints the course list as a table.
func printCourses(w io.Writer, courses []engine.CourseInfo) {
	if len(courses) == 0 {
		PrintEmptyState(w, "No courses registered")
		return
	}

	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Code,
			c.Term.String(),
			strconv.Itoa(c.Credits),
			semesterLabel(c.Semester),
		})
	}
	PrintTable(w, []string{"ID", "Code", "Term", "Stp", "Semester"}, rows)
}

// printSemesters prints one row per semester with its credit total and courses.
func printSemesters(w io.Writer, semesters []engine.SemesterInfo) {
	rows := make([][]string, 0, len(semesters))
	for _, sem := range semesters {
		codes := make([]string, 0, len(sem.Courses))
		for _, c := range sem.Courses {
			codes = append(codes, c.Code)
		}
		courses := strings.Join(codes, ", ")
		if courses == "" {
			courses = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(sem.Number),
			sem.Term.String(),
			fmt.Sprintf("%d/%d", sem.Credits, plan.MaxSlotCredits),
			courses,
		})
	}
	PrintTable(w, []string{"Semester", "Term", "Stp", "Courses"}, rows)
}

// printValidation prints the validation outcome.
func printValidation(w io.Writer, result *engine.ValidateResult) {
	if result.Valid {
		PrintSuccess(w, fmt.Sprintf("Plan is valid: every semester has %d stp", plan.MaxSlotCredits))
		return
	}

	PrintWarning(w, fmt.Sprintf("%s not at %d stp:",
		PrintCount(len(result.Invalid), "semester is", "semesters are"), plan.MaxSlotCredits))
	items := make([]string, 0, len(result.Invalid))
	for _, st := range result.Invalid {
		items = append(items, fmt.Sprintf("Semester %d (%s): %d stp", st.Number, st.Term, st.Credits))
	}
	PrintList(w, items, 1)
}

// parseSemester parses a 1-based semester number.
func parseSemester(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", plan.ErrInvalidSlot, s)
	}
	return n, nil
}

// parseCredits parses a credit count.
func parseCredits(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", plan.ErrInvalidCredits, s)
	}
	return n, nil
}
