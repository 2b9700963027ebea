package engine

import (
	"context"

	"github.com/danieljhkim/studyplan/internal/plan"
)

// PlaceCourse puts a course into a semester.
func (e *Engine) PlaceCourse(ctx context.Context, req *PlaceCourseRequest) (*PlaceCourseResult, error) {
	slot, err := semesterSlot(req.Semester)
	if err != nil {
		return nil, err
	}

	var placed plan.Course
	store, err := e.updatePlan(func(store *plan.Store) error {
		c, err := store.Find(req.Course)
		if err != nil {
			return err
		}
		placed = c
		return store.PlaceCourse(c.ID, slot)
	})
	if err != nil {
		return nil, err
	}

	return &PlaceCourseResult{
		Course:          newCourseInfo(store, placed),
		SemesterCredits: store.SlotCredits(slot),
	}, nil
}

// RemoveCourse takes a course out of a semester. The course stays registered.
func (e *Engine) RemoveCourse(ctx context.Context, req *RemoveCourseRequest) (*RemoveCourseResult, error) {
	slot, err := semesterSlot(req.Semester)
	if err != nil {
		return nil, err
	}

	var target plan.Course
	var removed bool
	store, err := e.updatePlan(func(store *plan.Store) error {
		c, err := store.Find(req.Course)
		if err != nil {
			return err
		}
		target = c
		current, placed := store.SlotOf(c.ID)
		removed = placed && current == slot
		return store.RemoveFromSlot(c.ID, slot)
	})
	if err != nil {
		return nil, err
	}

	return &RemoveCourseResult{
		Course:   newCourseInfo(store, target),
		Semester: req.Semester,
		Removed:  removed,
	}, nil
}

// ClearSemester removes every course from a semester.
func (e *Engine) ClearSemester(ctx context.Context, req *ClearSemesterRequest) (*ClearSemesterResult, error) {
	slot, err := semesterSlot(req.Semester)
	if err != nil {
		return nil, err
	}

	removed := []CourseInfo{}
	_, err = e.updatePlan(func(store *plan.Store) error {
		for _, c := range store.SlotCourses(slot) {
			removed = append(removed, newCourseInfo(store, c))
		}
		return store.ClearSlot(slot)
	})
	if err != nil {
		return nil, err
	}

	return &ClearSemesterResult{Semester: req.Semester, Removed: removed}, nil
}

// Show returns the semester overview.
func (e *Engine) Show(ctx context.Context, req *ShowRequest) (*ShowResult, error) {
	store, err := e.loadPlan()
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		PlanFile:  e.configPaths.PlanFile,
		Semesters: describeSemesters(store),
	}, nil
}

// Validate checks that every semester holds exactly the credit cap.
func (e *Engine) Validate(ctx context.Context, req *ValidateRequest) (*ValidateResult, error) {
	store, err := e.loadPlan()
	if err != nil {
		return nil, err
	}

	invalid := invalidSemesters(store)
	return &ValidateResult{
		Valid:   len(invalid) == 0,
		Invalid: invalid,
	}, nil
}
