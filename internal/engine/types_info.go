package engine

import "github.com/danieljhkim/studyplan/internal/plan"

// CourseInfo describes a course and where it is placed.
type CourseInfo struct {
	ID      int       `json:"id"`
	Code    string    `json:"code"`
	Term    plan.Term `json:"term"`
	Credits int       `json:"credits"`

	// Semester is the 1-based semester holding the course, 0 if unplaced
	Semester int `json:"semester,omitempty"`
}

// SemesterInfo describes one semester of the plan.
type SemesterInfo struct {
	// Number is the 1-based semester number
	Number int `json:"number"`

	// Term is the term the semester accepts
	Term plan.Term `json:"term"`

	// Credits is the sum of credits placed in the semester
	Credits int `json:"credits"`

	// Courses lists the placed courses in placement order
	Courses []CourseInfo `json:"courses"`
}

// SemesterTotal is a semester whose credit total is not exactly the cap.
type SemesterTotal struct {
	Number  int       `json:"number"`
	Term    plan.Term `json:"term"`
	Credits int       `json:"credits"`
}

// newCourseInfo builds a CourseInfo, looking up the course placement.
func newCourseInfo(store *plan.Store, c plan.Course) CourseInfo {
	info := CourseInfo{
		ID:      c.ID,
		Code:    c.Code,
		Term:    c.Term,
		Credits: c.Credits,
	}
	if slot, ok := store.SlotOf(c.ID); ok {
		info.Semester = slot + 1
	}
	return info
}

// describeSemesters returns every semester of the plan.
func describeSemesters(store *plan.Store) []SemesterInfo {
	semesters := make([]SemesterInfo, 0, plan.NumSlots)
	for slot := 0; slot < plan.NumSlots; slot++ {
		courses := store.SlotCourses(slot)
		infos := make([]CourseInfo, 0, len(courses))
		for _, c := range courses {
			infos = append(infos, newCourseInfo(store, c))
		}
		semesters = append(semesters, SemesterInfo{
			Number:  slot + 1,
			Term:    plan.TermForSlot(slot),
			Credits: store.SlotCredits(slot),
			Courses: infos,
		})
	}
	return semesters
}

// invalidSemesters converts plan.ValidatePlan output to semester totals.
func invalidSemesters(store *plan.Store) []SemesterTotal {
	invalid := store.ValidatePlan()
	totals := make([]SemesterTotal, 0, len(invalid))
	for _, st := range invalid {
		totals = append(totals, SemesterTotal{
			Number:  st.Semester(),
			Term:    plan.TermForSlot(st.Slot),
			Credits: st.Credits,
		})
	}
	return totals
}
