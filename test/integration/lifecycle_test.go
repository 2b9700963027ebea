package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/danieljhkim/studyplan/internal/engine"
	"github.com/danieljhkim/studyplan/internal/persist"
	"github.com/danieljhkim/studyplan/internal/plan"
)

func TestPlan_FullCycle(t *testing.T) {
	eng, fs := setupTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Init(ctx, &engine.InitRequest{}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Three 10 stp courses per semester fill all six
	for semester := 1; semester <= plan.NumSlots; semester++ {
		term := "høst"
		if semester%2 == 0 {
			term = "vår"
		}
		for i := 1; i <= 3; i++ {
			code := fmt.Sprintf("EMNE%d%d", semester, i)
			if _, err := eng.AddCourse(ctx, &engine.AddCourseRequest{Code: code, Term: term, Credits: 10}); err != nil {
				t.Fatalf("AddCourse(%s) error = %v", code, err)
			}
			if _, err := eng.PlaceCourse(ctx, &engine.PlaceCourseRequest{Course: code, Semester: semester}); err != nil {
				t.Fatalf("PlaceCourse(%s, %d) error = %v", code, semester, err)
			}
		}
	}

	result, err := eng.Validate(ctx, &engine.ValidateRequest{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid plan, invalid semesters: %+v", result.Invalid)
	}

	// The file on disk has the persisted shape
	var doc struct {
		NextID  int               `json:"next_id"`
		Courses []json.RawMessage `json:"courses"`
		Plan    [][]int           `json:"plan"`
	}
	if err := json.Unmarshal(fs.files[testPlanFile], &doc); err != nil {
		t.Fatalf("plan file is not JSON: %v", err)
	}
	if doc.NextID != 19 || len(doc.Courses) != 18 || len(doc.Plan) != plan.NumSlots {
		t.Errorf("unexpected document: next_id=%d courses=%d plan=%d", doc.NextID, len(doc.Courses), len(doc.Plan))
	}

	// Removing a course breaks validity until it is put back
	if _, err := eng.RemoveCourse(ctx, &engine.RemoveCourseRequest{Course: "EMNE11", Semester: 1}); err != nil {
		t.Fatalf("RemoveCourse() error = %v", err)
	}
	result, err = eng.Validate(ctx, &engine.ValidateRequest{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid || len(result.Invalid) != 1 || result.Invalid[0].Number != 1 || result.Invalid[0].Credits != 20 {
		t.Errorf("expected semester 1 at 20 stp, got %+v", result.Invalid)
	}

	if _, err := eng.PlaceCourse(ctx, &engine.PlaceCourseRequest{Course: "emne11", Semester: 1}); err != nil {
		t.Fatalf("PlaceCourse() error = %v", err)
	}
	result, _ = eng.Validate(ctx, &engine.ValidateRequest{})
	if !result.Valid {
		t.Errorf("expected valid plan after re-placing, got %+v", result.Invalid)
	}
}

func TestSession_EditSaveReload(t *testing.T) {
	eng, fs := setupTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Init(ctx, &engine.InitRequest{Seed: true}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	session, err := eng.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	seeded := session.Store().Len()
	if seeded == 0 {
		t.Fatal("expected seeded courses")
	}

	c, err := session.Store().AddCourse("ING101", plan.TermSpring, 5)
	if err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}
	if err := session.Store().PlaceCourse(c.ID, 5); err != nil {
		t.Fatalf("PlaceCourse() error = %v", err)
	}

	// Nothing reaches the file until the session saves
	writes := fs.writes
	list, err := eng.ListCourses(ctx, &engine.ListCoursesRequest{})
	if err != nil {
		t.Fatalf("ListCourses() error = %v", err)
	}
	if len(list.Courses) != seeded {
		t.Errorf("expected %d courses on disk before save, got %d", seeded, len(list.Courses))
	}

	if err := session.Save(""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if fs.writes != writes+1 {
		t.Errorf("expected one write, got %d", fs.writes-writes)
	}

	show, err := eng.Show(ctx, &engine.ShowRequest{})
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	sixth := show.Semesters[5]
	if len(sixth.Courses) != 1 || sixth.Courses[0].Code != "ING101" || sixth.Credits != 5 {
		t.Errorf("unexpected semester 6: %+v", sixth)
	}
}

func TestPlan_CorruptFile(t *testing.T) {
	eng, fs := setupTestEngine(t)
	ctx := context.Background()

	fs.files[testPlanFile] = []byte(`"just a string"`)

	_, err := eng.ListCourses(ctx, &engine.ListCoursesRequest{})
	if !errors.Is(err, plan.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}

	// A failed command must not overwrite the file
	_, err = eng.AddCourse(ctx, &engine.AddCourseRequest{Code: "MAT100", Term: "høst", Credits: 10})
	if !errors.Is(err, plan.ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if string(fs.files[testPlanFile]) != `"just a string"` {
		t.Error("corrupt file was overwritten")
	}

	// init --force replaces it
	if _, err := eng.Init(ctx, &engine.InitRequest{Force: true}); err != nil {
		t.Fatalf("Init(force) error = %v", err)
	}
	if _, err := eng.ListCourses(ctx, &engine.ListCoursesRequest{}); err != nil {
		t.Errorf("ListCourses() after init error = %v", err)
	}
}

func TestSession_LoadMissingFile(t *testing.T) {
	eng, _ := setupTestEngine(t)

	session := eng.NewSession()
	err := session.Load("/test/missing.json")
	if !errors.Is(err, persist.ErrIOFailure) {
		t.Errorf("expected ErrIOFailure, got %v", err)
	}
	if session.Path() != testPlanFile {
		t.Errorf("session path changed to %s", session.Path())
	}
}
