package plan

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Store owns the courses and the six semester slots of one study plan.
// It is not safe for concurrent use.
type Store struct {
	courses map[int]*Course
	order   []int
	slots   [NumSlots][]int
	nextID  int
}

// New creates an empty Store.
func New() *Store {
	s := &Store{
		courses: make(map[int]*Course),
		order:   []int{},
		nextID:  1,
	}
	for i := range s.slots {
		s.slots[i] = []int{}
	}
	return s
}

// AddCourse registers a new course and returns it with its assigned id.
func (s *Store) AddCourse(code string, term Term, credits int) (Course, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Course{}, ErrInvalidCode
	}
	if existing, ok := s.CourseByCode(code); ok {
		return Course{}, fmt.Errorf("%w: '%s'", ErrDuplicateCode, existing.Code)
	}
	if !term.Valid() {
		return Course{}, fmt.Errorf("%w: got %q", ErrInvalidTerm, string(term))
	}
	if !ValidCredits(credits) {
		return Course{}, fmt.Errorf("%w: got %d", ErrInvalidCredits, credits)
	}

	c := &Course{
		ID:      s.nextID,
		Code:    code,
		Term:    term,
		Credits: credits,
	}
	s.nextID++
	s.insert(c)
	return *c, nil
}

// DeleteCourse removes a course and clears it from the slot holding it.
func (s *Store) DeleteCourse(id int) error {
	if _, ok := s.courses[id]; !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if slot, ok := s.SlotOf(id); ok {
		s.slots[slot] = removeID(s.slots[slot], id)
	}
	delete(s.courses, id)
	s.order = removeID(s.order, id)
	return nil
}

// PlaceCourse puts a course into a semester slot.
// On error the plan is left unchanged.
func (s *Store) PlaceCourse(id, slot int) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot+1)
	}
	c, ok := s.courses[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if current, placed := s.SlotOf(id); placed {
		return fmt.Errorf("%w: %s is in semester %d", ErrAlreadyPlaced, c.Code, current+1)
	}
	if want := TermForSlot(slot); c.Term != want {
		return fmt.Errorf("%w: %s is a %s course and can only be placed in semester %s",
			ErrTermMismatch, c.Code, c.Term, c.Term.AllowedSlots())
	}
	if total := s.SlotCredits(slot); total+c.Credits > MaxSlotCredits {
		return fmt.Errorf("%w: no room for %s (%d stp) in semester %d, %d/%d stp used",
			ErrCapacityExceeded, c.Code, c.Credits, slot+1, total, MaxSlotCredits)
	}

	s.slots[slot] = append(s.slots[slot], id)
	return nil
}

// RemoveFromSlot takes a course out of a slot. It is a no-op when the
// course is not in that slot.
func (s *Store) RemoveFromSlot(id, slot int) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot+1)
	}
	s.slots[slot] = removeID(s.slots[slot], id)
	return nil
}

// ClearSlot empties a slot. The courses stay registered.
func (s *Store) ClearSlot(slot int) error {
	if !ValidSlot(slot) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot+1)
	}
	s.slots[slot] = []int{}
	return nil
}

// ValidatePlan returns every slot whose total is not exactly MaxSlotCredits.
// Over-full slots are reported too; they can only come from a loaded document.
func (s *Store) ValidatePlan() []SlotTotal {
	invalid := []SlotTotal{}
	for slot := range s.slots {
		if total := s.SlotCredits(slot); total != MaxSlotCredits {
			invalid = append(invalid, SlotTotal{Slot: slot, Credits: total})
		}
	}
	return invalid
}

// Course returns the course with the given id.
func (s *Store) Course(id int) (Course, bool) {
	c, ok := s.courses[id]
	if !ok {
		return Course{}, false
	}
	return *c, true
}

// CourseByCode returns the course whose code matches, ignoring case.
func (s *Store) CourseByCode(code string) (Course, bool) {
	key := foldKey(code)
	for _, id := range s.order {
		if c := s.courses[id]; foldKey(c.Code) == key {
			return *c, true
		}
	}
	return Course{}, false
}

// Find resolves a course reference given by a user: a course code, or
// failing that, a numeric id.
func (s *Store) Find(ref string) (Course, error) {
	if c, ok := s.CourseByCode(ref); ok {
		return c, nil
	}
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if c, ok := s.Course(id); ok {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Courses returns all courses in registration order.
func (s *Store) Courses() []Course {
	out := make([]Course, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.courses[id])
	}
	return out
}

// Len returns the number of registered courses.
func (s *Store) Len() int {
	return len(s.order)
}

// SlotCourseIDs returns a copy of the course ids in a slot, or nil for an
// invalid slot.
func (s *Store) SlotCourseIDs(slot int) []int {
	if !ValidSlot(slot) {
		return nil
	}
	return slices.Clone(s.slots[slot])
}

// SlotCourses returns the courses placed in a slot, in placement order.
func (s *Store) SlotCourses(slot int) []Course {
	if !ValidSlot(slot) {
		return nil
	}
	out := make([]Course, 0, len(s.slots[slot]))
	for _, id := range s.slots[slot] {
		if c, ok := s.courses[id]; ok {
			out = append(out, *c)
		}
	}
	return out
}

// SlotCredits returns the credit total of a slot.
func (s *Store) SlotCredits(slot int) int {
	total := 0
	for _, c := range s.SlotCourses(slot) {
		total += c.Credits
	}
	return total
}

// SlotOf returns the slot holding the course, if any.
func (s *Store) SlotOf(id int) (int, bool) {
	for slot, ids := range s.slots {
		if slices.Contains(ids, id) {
			return slot, true
		}
	}
	return 0, false
}

// IsPlaced reports whether the course sits in any slot.
func (s *Store) IsPlaced(id int) bool {
	_, ok := s.SlotOf(id)
	return ok
}

// NextID returns the id the next added course will get.
func (s *Store) NextID() int {
	return s.nextID
}

func (s *Store) insert(c *Course) {
	s.courses[c.ID] = c
	s.order = append(s.order, c.ID)
}

// removeID returns ids without any occurrence of id.
func removeID(ids []int, id int) []int {
	return slices.DeleteFunc(ids, func(x int) bool { return x == id })
}
