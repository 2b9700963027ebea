package plan

const (
	// NumSlots is the number of semesters in a plan.
	NumSlots = 6

	// MaxSlotCredits is the credit cap of one semester, and the total a
	// semester needs for the plan to be valid.
	MaxSlotCredits = 30

	// MinCredits is the smallest credit weight a course can have.
	MinCredits = 1
)

// Course is a registered course. Courses are immutable once created.
type Course struct {
	// ID is assigned sequentially by the Store, starting at 1
	ID int `json:"id"`

	// Code is the course code, unique among courses ignoring case
	Code string `json:"kode"`

	// Term restricts which semesters the course may be placed in
	Term Term `json:"semester"`

	// Credits is the workload in credit points (stp)
	Credits int `json:"stp"`
}

// SlotTotal is the credit total of one semester slot.
type SlotTotal struct {
	// Slot is the 0-based slot index
	Slot int `json:"slot"`

	// Credits is the sum of credits placed in the slot
	Credits int `json:"credits"`
}

// Semester returns the 1-based semester number of the slot.
func (t SlotTotal) Semester() int {
	return t.Slot + 1
}

// ValidCredits reports whether credits is an allowed course weight.
func ValidCredits(credits int) bool {
	return credits >= MinCredits && credits <= MaxSlotCredits
}

// ValidSlot reports whether slot is a slot index of the plan.
func ValidSlot(slot int) bool {
	return slot >= 0 && slot < NumSlots
}
