package engine

// InitResult represents the result of creating a plan file.
type InitResult struct {
	// PlanFile is the path of the created file
	PlanFile string `json:"planFile"`

	// Overwritten is true if an existing file was replaced
	Overwritten bool `json:"overwritten"`

	// Seeded lists the example courses that were registered
	Seeded []CourseInfo `json:"seeded"`
}

// AddCourseResult represents the result of registering a course.
type AddCourseResult struct {
	Course CourseInfo `json:"course"`
}

// DeleteCourseResult represents the result of deleting a course.
type DeleteCourseResult struct {
	// Course is the deleted course; Course.Semester is where it was placed
	Course CourseInfo `json:"course"`
}

// ListCoursesResult represents the registered courses.
type ListCoursesResult struct {
	Courses []CourseInfo `json:"courses"`
}

// PlaceCourseResult represents the result of placing a course.
type PlaceCourseResult struct {
	Course CourseInfo `json:"course"`

	// SemesterCredits is the semester total after placement
	SemesterCredits int `json:"semesterCredits"`
}

// RemoveCourseResult represents the result of removing a course from a semester.
type RemoveCourseResult struct {
	Course CourseInfo `json:"course"`

	// Semester is the semester the removal targeted
	Semester int `json:"semester"`

	// Removed is false when the course was not in that semester
	Removed bool `json:"removed"`
}

// ClearSemesterResult represents the result of emptying a semester.
type ClearSemesterResult struct {
	Semester int `json:"semester"`

	// Removed lists the courses that were taken out
	Removed []CourseInfo `json:"removed"`
}

// ShowResult represents the semester overview.
type ShowResult struct {
	PlanFile  string         `json:"planFile"`
	Semesters []SemesterInfo `json:"semesters"`
}

// ValidateResult represents the outcome of a plan check.
type ValidateResult struct {
	// Valid is true when every semester holds exactly the credit cap
	Valid bool `json:"valid"`

	// Invalid lists the semesters that are under- or over-full
	Invalid []SemesterTotal `json:"invalid"`
}
