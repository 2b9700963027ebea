package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Document is the persisted form of a Store.
type Document struct {
	// NextID is the id the next added course will get
	NextID int `json:"next_id"`

	// Courses lists all registered courses
	Courses []Course `json:"courses"`

	// Plan holds the course ids of each of the NumSlots semesters
	Plan [][]int `json:"plan"`
}

// rawDocument mirrors Document with every field left undecoded, so a bad
// record can be dropped without failing the whole document.
type rawDocument struct {
	NextID  json.RawMessage   `json:"next_id"`
	Courses []json.RawMessage `json:"courses"`
	Plan    []json.RawMessage `json:"plan"`
}

type rawCourse struct {
	ID      *int    `json:"id"`
	Code    *string `json:"kode"`
	Term    *string `json:"semester"`
	Credits *int    `json:"stp"`
}

// Document returns a snapshot of the store in its persisted form.
func (s *Store) Document() Document {
	doc := Document{
		NextID:  s.nextID,
		Courses: s.Courses(),
		Plan:    make([][]int, NumSlots),
	}
	for slot := range s.slots {
		doc.Plan[slot] = slices.Clone(s.slots[slot])
	}
	return doc
}

// Encode serializes the store as indented JSON. Non-ASCII course codes and
// term names are written as-is.
func Encode(s *Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Document()); err != nil {
		return nil, fmt.Errorf("failed to encode study plan: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a persisted document into a Store.
// Only a document that is not a JSON object with the expected top-level
// shape is an error; invalid records inside it are dropped, see FromDocument.
func Decode(data []byte) (*Store, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw.Courses == nil && raw.Plan == nil && raw.NextID == nil && !isJSONObject(data) {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedDocument)
	}

	doc := Document{NextID: 1}
	if len(raw.NextID) > 0 {
		var next int
		if err := json.Unmarshal(raw.NextID, &next); err == nil {
			doc.NextID = next
		}
	}

	for _, rc := range raw.Courses {
		var c rawCourse
		if err := json.Unmarshal(rc, &c); err != nil {
			continue
		}
		if c.ID == nil || c.Code == nil || c.Term == nil || c.Credits == nil {
			continue
		}
		doc.Courses = append(doc.Courses, Course{
			ID:      *c.ID,
			Code:    *c.Code,
			Term:    Term(*c.Term),
			Credits: *c.Credits,
		})
	}

	doc.Plan = make([][]int, NumSlots)
	for slot := 0; slot < NumSlots && slot < len(raw.Plan); slot++ {
		var ids []int
		if err := json.Unmarshal(raw.Plan[slot], &ids); err != nil {
			continue
		}
		doc.Plan[slot] = ids
	}

	return FromDocument(doc), nil
}

// FromDocument builds a Store from a document, dropping whatever would
// break the store's rules:
//   - courses with a blank code, an unknown term or credits out of range
//   - courses whose id or code repeats an earlier course
//   - slot entries naming a course that does not exist
//   - repeated placements of a course (the first one wins)
//   - placements in a slot of the wrong term
//
// Slots over the credit cap are kept so ValidatePlan can report them.
// The next id is raised past the largest surviving course id.
func FromDocument(doc Document) *Store {
	s := New()

	maxID := 0
	for _, c := range doc.Courses {
		code := strings.TrimSpace(c.Code)
		term, err := ParseTerm(string(c.Term))
		if err != nil || code == "" || !ValidCredits(c.Credits) || c.ID < 1 {
			continue
		}
		if _, dup := s.courses[c.ID]; dup {
			continue
		}
		if _, dup := s.CourseByCode(code); dup {
			continue
		}
		s.insert(&Course{ID: c.ID, Code: code, Term: term, Credits: c.Credits})
		maxID = max(maxID, c.ID)
	}
	s.nextID = max(doc.NextID, maxID+1, 1)

	for slot := 0; slot < NumSlots && slot < len(doc.Plan); slot++ {
		for _, id := range doc.Plan[slot] {
			c, ok := s.courses[id]
			if !ok || s.IsPlaced(id) || c.Term != TermForSlot(slot) {
				continue
			}
			s.slots[slot] = append(s.slots[slot], id)
		}
	}

	return s
}

func isJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
