// Package plan holds the study plan model and enforces its rules.
//
// A plan is a list of registered courses and six fixed semester slots. Slots
// refer to courses by id only; the Store owns every Course and resolves ids
// through its index, so deleting a course also clears it from its slot.
//
// Rules enforced by Store:
//   - Course codes are unique, compared case-insensitively
//   - Autumn courses go in slots 0/2/4, spring courses in slots 1/3/5
//   - A slot never holds more than MaxSlotCredits through normal placement
//   - A course sits in at most one slot
//
// Document and Decode convert a Store to and from the persisted JSON shape.
// Decode is lenient: invalid records are dropped instead of failing the load.
package plan
