package engine

import (
	"context"

	"github.com/danieljhkim/studyplan/internal/plan"
)

// AddCourse registers a course in the plan file.
func (e *Engine) AddCourse(ctx context.Context, req *AddCourseRequest) (*AddCourseResult, error) {
	term, err := plan.ParseTerm(req.Term)
	if err != nil {
		return nil, err
	}

	var added plan.Course
	store, err := e.updatePlan(func(store *plan.Store) error {
		c, err := store.AddCourse(req.Code, term, req.Credits)
		added = c
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AddCourseResult{Course: newCourseInfo(store, added)}, nil
}

// DeleteCourse deletes a course and removes it from its semester.
func (e *Engine) DeleteCourse(ctx context.Context, req *DeleteCourseRequest) (*DeleteCourseResult, error) {
	var deleted CourseInfo
	_, err := e.updatePlan(func(store *plan.Store) error {
		c, err := store.Find(req.Course)
		if err != nil {
			return err
		}
		// Capture placement before the delete clears it
		deleted = newCourseInfo(store, c)
		return store.DeleteCourse(c.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteCourseResult{Course: deleted}, nil
}

// ListCourses returns the registered courses in registration order.
func (e *Engine) ListCourses(ctx context.Context, req *ListCoursesRequest) (*ListCoursesResult, error) {
	store, err := e.loadPlan()
	if err != nil {
		return nil, err
	}

	courses := []CourseInfo{}
	for _, c := range store.Courses() {
		if req.Unplaced && store.IsPlaced(c.ID) {
			continue
		}
		courses = append(courses, newCourseInfo(store, c))
	}

	return &ListCoursesResult{Courses: courses}, nil
}
