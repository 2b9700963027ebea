package plan

import "errors"

var (
	// ErrDuplicateCode indicates a course with the same code already exists.
	ErrDuplicateCode = errors.New("course code already exists")

	// ErrInvalidCode indicates a blank course code.
	ErrInvalidCode = errors.New("course code must not be empty")

	// ErrInvalidTerm indicates a term other than autumn or spring.
	ErrInvalidTerm = errors.New("term must be 'høst' or 'vår'")

	// ErrInvalidCredits indicates credits outside 1..MaxSlotCredits.
	ErrInvalidCredits = errors.New("credits must be an integer between 1 and 30")

	// ErrNotFound indicates the course does not exist.
	ErrNotFound = errors.New("course not found")

	// ErrAlreadyPlaced indicates the course already sits in a semester.
	ErrAlreadyPlaced = errors.New("course is already in the study plan")

	// ErrTermMismatch indicates the course term does not match the semester.
	ErrTermMismatch = errors.New("course term does not match semester")

	// ErrCapacityExceeded indicates the semester has no room for the course.
	ErrCapacityExceeded = errors.New("semester capacity exceeded")

	// ErrInvalidSlot indicates a semester index outside the plan.
	ErrInvalidSlot = errors.New("invalid semester")

	// ErrMalformedDocument indicates the persisted document could not be parsed.
	ErrMalformedDocument = errors.New("malformed study plan document")
)
