package engine

import (
	"github.com/danieljhkim/studyplan/internal/hash"
	"github.com/danieljhkim/studyplan/internal/persist"
	"github.com/danieljhkim/studyplan/internal/plan"
)

// Session keeps a plan in memory for the interactive shell.
// Changes are only written by Save; Dirty reports whether the plan differs
// from what was last saved or loaded.
type Session struct {
	planRepo  persist.PlanRepo
	hasher    hash.Hasher
	store     *plan.Store
	path      string
	cleanHash string
}

// NewSession starts a session with an empty plan bound to the configured
// plan file. Nothing is read from disk.
func (e *Engine) NewSession() *Session {
	s := &Session{
		planRepo: e.planRepo,
		hasher:   e.hasher,
		store:    plan.New(),
		path:     e.configPaths.PlanFile,
	}
	s.markClean()
	return s
}

// OpenSession starts a session from the configured plan file, or with an
// empty plan when the file does not exist yet.
func (e *Engine) OpenSession() (*Session, error) {
	s := e.NewSession()

	exists, err := e.planRepo.Exists(s.path)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := s.Load(""); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Store returns the session's plan. Mutations through it mark the session dirty.
func (s *Session) Store() *plan.Store {
	return s.store
}

// Path returns the file the session saves to by default.
func (s *Session) Path() string {
	return s.path
}

// Dirty reports whether the plan has unsaved changes.
func (s *Session) Dirty() bool {
	return s.fingerprint() != s.cleanHash
}

// Save writes the plan to path, or to the session path when path is empty.
// On success path becomes the session path.
func (s *Session) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if err := s.planRepo.Save(path, s.store); err != nil {
		return err
	}
	s.path = path
	s.markClean()
	return nil
}

// Load replaces the plan with the file at path, or the session path when
// path is empty. On error the current plan is kept.
func (s *Session) Load(path string) error {
	if path == "" {
		path = s.path
	}
	store, err := s.planRepo.Load(path)
	if err != nil {
		return err
	}
	s.store = store
	s.path = path
	s.markClean()
	return nil
}

// Reset discards the plan and starts over with an empty one. The session
// path is kept and the empty plan counts as clean.
func (s *Session) Reset() {
	s.store = plan.New()
	s.markClean()
}

// Courses describes the session's courses in registration order.
func (s *Session) Courses() []CourseInfo {
	courses := make([]CourseInfo, 0, s.store.Len())
	for _, c := range s.store.Courses() {
		courses = append(courses, newCourseInfo(s.store, c))
	}
	return courses
}

// Semesters describes every semester of the session's plan.
func (s *Session) Semesters() []SemesterInfo {
	return describeSemesters(s.store)
}

// Validate checks the session's plan like Engine.Validate.
func (s *Session) Validate() *ValidateResult {
	invalid := invalidSemesters(s.store)
	return &ValidateResult{Valid: len(invalid) == 0, Invalid: invalid}
}

// Describe returns the CourseInfo for a course in the session's plan.
func (s *Session) Describe(c plan.Course) CourseInfo {
	return newCourseInfo(s.store, c)
}

func (s *Session) markClean() {
	s.cleanHash = s.fingerprint()
}

// fingerprint hashes the plan's canonical encoding.
func (s *Session) fingerprint() string {
	data, err := plan.Encode(s.store)
	if err != nil {
		return ""
	}
	return s.hasher.Sum(data)
}
