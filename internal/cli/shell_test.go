package cli

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/danieljhkim/studyplan/internal/config"
	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/fsops"
	"github.com/danieljhkim/studyplan/internal/hash"
	"github.com/danieljhkim/studyplan/internal/persist"
)

func newTestSession(t *testing.T) (*engine.Session, string) {
	t.Helper()

	dir := t.TempDir()
	paths := config.Paths{Root: dir, PlanFile: filepath.Join(dir, "studieplan.json")}
	eng := engine.New(persist.NewFilePlanRepo(fsops.NewRealFS()), hash.NewSHA256Hasher(), paths)
	return eng.NewSession(), paths.PlanFile
}

// runScript feeds one input line per element to a non-interactive shell.
func runScript(t *testing.T, session *engine.Session, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := newShell(session, in, &out, false).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestShell_AddPlaceValidateSave(t *testing.T) {
	session, path := newTestSession(t)

	output := runScript(t, session,
		"1", "MAT100", "høst", "30",
		"2", "MAT100", "1",
		"5",
		"6", "",
		"8",
	)

	assertContains(t, output,
		"Added course MAT100 (høst, 30 stp)",
		"Placed MAT100 in semester 1 (30/30 stp)",
		"5 semesters are not at 30 stp",
		"Semester 2 (vår): 0 stp",
		"Saved plan to "+path,
	)
	if strings.Contains(output, "unsaved") {
		t.Errorf("quit after save should not warn:\n%s", output)
	}

	saved, err := persist.NewFilePlanRepo(fsops.NewRealFS()).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	c, ok := saved.CourseByCode("MAT100")
	if !ok {
		t.Fatal("expected MAT100 in saved plan")
	}
	if ids := saved.SlotCourseIDs(0); !slices.Equal(ids, []int{c.ID}) {
		t.Errorf("expected semester 1 = [%d], got %v", c.ID, ids)
	}
}

func TestShell_ErrorsDoNotStopTheLoop(t *testing.T) {
	session, _ := newTestSession(t)

	output := runScript(t, session,
		"1", "MAT200", "vår", "10",
		"2", "MAT200", "1", // wrong term
		"2", "NOPE", "2", // unknown course
		"1", "BAD", "sommer", "5", // unknown term
		"1", "BAD", "høst", "ti", // credits not a number
		"42",
		"abc",
		"2", "MAT200", "2",
		"3",
		"4",
	)

	assertContains(t, output,
		"✗ ",
		"not found",
		"Unknown choice \"42\"",
		"Unknown choice \"abc\"",
		"Placed MAT200 in semester 2 (10/30 stp)",
		"MAT200",
		"10/30",
		"Input closed, unsaved changes were discarded",
	)
	if strings.Count(output, "✗ ") != 4 {
		t.Errorf("expected 4 errors, got output:\n%s", output)
	}
	if session.Store().Len() != 1 {
		t.Errorf("expected only MAT200 registered, got %d courses", session.Store().Len())
	}
}

func TestShell_QuitWithUnsavedChanges(t *testing.T) {
	session, _ := newTestSession(t)

	output := runScript(t, session,
		"1", "MAT100", "høst", "10",
		"8", "n",
		"3",
		"8", "y",
		"3", // never reached
	)

	if strings.Count(output, "The plan has unsaved changes") != 2 {
		t.Errorf("expected two confirmations:\n%s", output)
	}
	if strings.Count(output, "MAT100") != 2 {
		t.Errorf("expected one add and one listing before quitting:\n%s", output)
	}
}

func TestShell_DeleteRemoveClear(t *testing.T) {
	session, _ := newTestSession(t)

	output := runScript(t, session,
		"1", "MAT100", "høst", "10",
		"1", "DAT120", "høst", "10",
		"1", "FYS102", "høst", "5",
		"2", "MAT100", "3",
		"2", "DAT120", "3",
		"2", "FYS102", "1",
		"10", "FYS102", "3",
		"10", "FYS102", "1",
		"9", "mat100",
		"11", "3",
		"11", "9",
	)

	assertContains(t, output,
		"FYS102 is not in semester 3",
		"Removed FYS102 from semester 1",
		"Deleted course MAT100",
		"Cleared semester 3 (1 course removed)",
	)
	if session.Store().Len() != 2 {
		t.Errorf("expected 2 courses left, got %d", session.Store().Len())
	}
	for slot := 0; slot < 6; slot++ {
		if ids := session.Store().SlotCourseIDs(slot); len(ids) != 0 {
			t.Errorf("expected empty semester %d, got %v", slot+1, ids)
		}
	}
}

func TestShell_LoadAndNewPlan(t *testing.T) {
	session, path := newTestSession(t)

	runScript(t, session,
		"1", "MAT100", "høst", "10",
		"6", "",
	)

	other := filepath.Join(filepath.Dir(path), "other.json")
	output := runScript(t, session,
		"12", // clean, no confirmation
		"1", "DAT120", "høst", "10",
		"7", "n", // keep unsaved DAT120
		"6", other,
		"12",
		"7", path,
	)

	assertContains(t, output,
		"Started a new plan",
		"Saved plan to "+other,
		"Loaded 1 course from "+path,
	)
	if _, ok := session.Store().CourseByCode("MAT100"); !ok {
		t.Error("expected MAT100 after loading the first file")
	}
	if session.Dirty() {
		t.Error("expected clean session after load")
	}

	output = runScript(t, session,
		"7", filepath.Join(filepath.Dir(path), "missing.json"),
	)
	assertContains(t, output, "✗ ")
	if session.Path() != path {
		t.Errorf("failed load changed path to %s", session.Path())
	}
}

func TestShell_InteractivePrompts(t *testing.T) {
	session, path := newTestSession(t)

	var out bytes.Buffer
	in := strings.NewReader("3\n8\n")
	if err := newShell(session, in, &out, true).run(); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	assertContains(t, out.String(),
		"File: "+path,
		"1. Add course",
		"8. Quit",
		"12. New plan",
		"Choice: ",
		"No courses registered",
	)
}

func TestShellCommand(t *testing.T) {
	planPath := setupTestEnv(t)
	mustExecute(t, "course", "add", "MAT100", "høst", "10")

	output, err := executeCommand(t, "2\nMAT100\n5\n6\n\n8\n", "shell")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, output, "Placed MAT100 in semester 5", "Saved plan to "+planPath)

	output = mustExecute(t, "plan", "show")
	assertContains(t, output, "MAT100")
}
