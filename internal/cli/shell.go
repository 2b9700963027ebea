package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/plan"
)

// errInputClosed ends the shell when input runs out mid-action.
var errInputClosed = errors.New("input closed")

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the plan from an interactive menu",
	Long: `Start a numbered menu for editing the plan.

Changes are kept in memory until you save (6). Quitting (8), loading (7) or
starting a new plan (12) with unsaved changes asks for confirmation.
Prompts are only shown when input is a terminal, so the menu can also be
driven from a script.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		session, err := eng.OpenSession()
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		return newShell(session, in, cmd.OutOrStdout(), isTerminal(in)).run()
	},
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type shell struct {
	session     *engine.Session
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
	done        bool
}

type menuItem struct {
	label string
	run   func(*shell) error
}

// shellMenu is numbered from 1 in this order.
var shellMenu = []menuItem{
	{"Add course", (*shell).addCourse},
	{"Place course in semester", (*shell).placeCourse},
	{"List courses", (*shell).listCourses},
	{"Show study plan", (*shell).showPlan},
	{"Validate plan", (*shell).validate},
	{"Save plan", (*shell).save},
	{"Load plan", (*shell).load},
	{"Quit", (*shell).quit},
	{"Delete course", (*shell).deleteCourse},
	{"Remove course from semester", (*shell).removeFromSemester},
	{"Clear semester", (*shell).clearSemester},
	{"New plan", (*shell).newPlan},
}

func newShell(session *engine.Session, in io.Reader, out io.Writer, interactive bool) *shell {
	return &shell{
		session:     session,
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

func (s *shell) run() error {
	if s.interactive {
		PrintSection(s.out, "Study Plan")
		PrintLabelValue(s.out, "File", s.session.Path())
	}

	for !s.done {
		if s.interactive {
			s.printMenu()
		}

		choice, err := s.ask("Choice")
		if err != nil {
			return s.closed(err)
		}
		if choice == "" {
			continue
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(shellMenu) {
			PrintWarning(s.out, fmt.Sprintf("Unknown choice %q (1-%d)", choice, len(shellMenu)))
			continue
		}

		if err := shellMenu[n-1].run(s); err != nil {
			if errors.Is(err, errInputClosed) {
				return s.closed(err)
			}
			PrintError(s.out, err.Error())
		}
	}
	return nil
}

func (s *shell) printMenu() {
	_, _ = fmt.Fprintln(s.out)
	labels := make([]string, 0, len(shellMenu))
	for _, item := range shellMenu {
		labels = append(labels, item.label)
	}
	PrintNumberedList(s.out, labels, 1)
}

// closed ends the loop on end of input. Read errors other than EOF are returned.
func (s *shell) closed(err error) error {
	if s.session.Dirty() {
		PrintWarning(s.out, "Input closed, unsaved changes were discarded")
	}
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

// ask reads one trimmed line, showing label first on a terminal.
func (s *shell) ask(label string) (string, error) {
	if s.interactive {
		_, _ = fmt.Fprintf(s.out, "%s: ", label)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// confirmDiscard asks before throwing away unsaved changes.
func (s *shell) confirmDiscard(question string) (bool, error) {
	if !s.session.Dirty() {
		return true, nil
	}
	PrintWarning(s.out, "The plan has unsaved changes")
	answer, err := s.ask(question + " (y/N)")
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}

// askAll reads one answer per label. Answers are validated by the caller
// after all are read so a rejected value never shifts the next menu choice.
func (s *shell) askAll(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := s.ask(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

const courseLabel = "Course code or id"

var semesterLabelPrompt = fmt.Sprintf("Semester (1-%d)", plan.NumSlots)

// courseAndSlot reads a course reference and a semester number.
func (s *shell) courseAndSlot() (plan.Course, int, error) {
	answers, err := s.askAll(courseLabel, semesterLabelPrompt)
	if err != nil {
		return plan.Course{}, 0, err
	}
	c, err := s.session.Store().Find(answers[0])
	if err != nil {
		return plan.Course{}, 0, err
	}
	semester, err := parseSemester(answers[1])
	if err != nil {
		return plan.Course{}, 0, err
	}
	return c, semester - 1, nil
}

func (s *shell) addCourse() error {
	answers, err := s.askAll("Course code", "Term (høst/vår)", "Credits (stp)")
	if err != nil {
		return err
	}
	term, err := plan.ParseTerm(answers[1])
	if err != nil {
		return err
	}
	credits, err := parseCredits(answers[2])
	if err != nil {
		return err
	}

	c, err := s.session.Store().AddCourse(answers[0], term, credits)
	if err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Added course %s", describeCourse(s.session.Describe(c))))
	return nil
}

func (s *shell) placeCourse() error {
	c, slot, err := s.courseAndSlot()
	if err != nil {
		return err
	}

	if err := s.session.Store().PlaceCourse(c.ID, slot); err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Placed %s in semester %d (%d/%d stp)",
		c.Code, slot+1, s.session.Store().SlotCredits(slot), plan.MaxSlotCredits))
	return nil
}

func (s *shell) listCourses() error {
	printCourses(s.out, s.session.Courses())
	return nil
}

func (s *shell) showPlan() error {
	printSemesters(s.out, s.session.Semesters())
	return nil
}

func (s *shell) validate() error {
	printValidation(s.out, s.session.Validate())
	return nil
}

func (s *shell) save() error {
	path, err := s.ask(fmt.Sprintf("File [%s]", s.session.Path()))
	if err != nil {
		return err
	}
	if err := s.session.Save(path); err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Saved plan to %s", s.session.Path()))
	return nil
}

func (s *shell) load() error {
	ok, err := s.confirmDiscard("Load anyway?")
	if err != nil || !ok {
		return err
	}
	path, err := s.ask(fmt.Sprintf("File [%s]", s.session.Path()))
	if err != nil {
		return err
	}
	if err := s.session.Load(path); err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Loaded %s from %s",
		PrintCount(s.session.Store().Len(), "course", "courses"), s.session.Path()))
	return nil
}

func (s *shell) quit() error {
	ok, err := s.confirmDiscard("Quit anyway?")
	if err != nil {
		return err
	}
	s.done = ok
	return nil
}

func (s *shell) deleteCourse() error {
	ref, err := s.ask(courseLabel)
	if err != nil {
		return err
	}
	c, err := s.session.Store().Find(ref)
	if err != nil {
		return err
	}
	if err := s.session.Store().DeleteCourse(c.ID); err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Deleted course %s", c.Code))
	return nil
}

func (s *shell) removeFromSemester() error {
	c, slot, err := s.courseAndSlot()
	if err != nil {
		return err
	}

	current, placed := s.session.Store().SlotOf(c.ID)
	if err := s.session.Store().RemoveFromSlot(c.ID, slot); err != nil {
		return err
	}
	if !placed || current != slot {
		PrintWarning(s.out, fmt.Sprintf("%s is not in semester %d", c.Code, slot+1))
		return nil
	}
	PrintSuccess(s.out, fmt.Sprintf("Removed %s from semester %d", c.Code, slot+1))
	return nil
}

func (s *shell) clearSemester() error {
	answer, err := s.ask(semesterLabelPrompt)
	if err != nil {
		return err
	}
	semester, err := parseSemester(answer)
	if err != nil {
		return err
	}
	slot := semester - 1
	if !plan.ValidSlot(slot) {
		return fmt.Errorf("%w: %d", plan.ErrInvalidSlot, slot+1)
	}

	count := len(s.session.Store().SlotCourseIDs(slot))
	if err := s.session.Store().ClearSlot(slot); err != nil {
		return err
	}
	PrintSuccess(s.out, fmt.Sprintf("Cleared semester %d (%s removed)",
		slot+1, PrintCount(count, "course", "courses")))
	return nil
}

func (s *shell) newPlan() error {
	ok, err := s.confirmDiscard("Start a new plan anyway?")
	if err != nil || !ok {
		return err
	}
	s.session.Reset()
	PrintSuccess(s.out, "Started a new plan")
	return nil
}
