package engine

// InitRequest represents a request to create a new plan file.
type InitRequest struct {
	// Seed registers the example course catalogue
	Seed bool

	// Force overwrites an existing plan file
	Force bool
}

// AddCourseRequest represents a request to register a course.
type AddCourseRequest struct {
	// Code is the course code
	Code string

	// Term is the term name as typed by the user ("høst", "vår", "autumn", ...)
	Term string

	// Credits is the course weight in credit points
	Credits int
}

// DeleteCourseRequest represents a request to delete a course.
type DeleteCourseRequest struct {
	// Course is a course code or numeric id
	Course string
}

// ListCoursesRequest represents a request to list registered courses.
type ListCoursesRequest struct {
	// Unplaced limits the list to courses not in any semester
	Unplaced bool
}

// PlaceCourseRequest represents a request to put a course in a semester.
type PlaceCourseRequest struct {
	// Course is a course code or numeric id
	Course string

	// Semester is the 1-based semester number
	Semester int
}

// RemoveCourseRequest represents a request to take a course out of a semester.
type RemoveCourseRequest struct {
	// Course is a course code or numeric id
	Course string

	// Semester is the 1-based semester number
	Semester int
}

// ClearSemesterRequest represents a request to empty a semester.
type ClearSemesterRequest struct {
	// Semester is the 1-based semester number
	Semester int
}

// ShowRequest represents a request for the semester overview.
type ShowRequest struct{}

// ValidateRequest represents a request to check the plan.
type ValidateRequest struct{}
