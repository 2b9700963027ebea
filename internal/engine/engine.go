// Package engine provides the operations behind the studyplan commands.
//
// The engine package sits between the CLI and the plan model. Each command
// operation loads the plan file, applies one change through plan.Store and
// writes the file back. The interactive shell instead keeps a Session open
// and saves or loads only when asked.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Course operations: add, delete and list courses
//   - Semester operations: place, remove, clear, show and validate
//   - Session: In-memory plan with explicit save/load and change detection
package engine

import (
	"fmt"

	"github.com/danieljhkim/studyplan/internal/config"
	"github.com/danieljhkim/studyplan/internal/hash"
	"github.com/danieljhkim/studyplan/internal/persist"
	"github.com/danieljhkim/studyplan/internal/plan"
)

// Engine orchestrates all studyplan operations.
// It is the main API surface called by the CLI.
type Engine struct {
	planRepo    persist.PlanRepo
	hasher      hash.Hasher
	configPaths config.Paths
}

// New creates a new Engine with the given dependencies.
func New(
	planRepo persist.PlanRepo,
	hasher hash.Hasher,
	paths config.Paths,
) *Engine {
	return &Engine{
		planRepo:    planRepo,
		hasher:      hasher,
		configPaths: paths,
	}
}

// PlanFile returns the plan file the engine operates on.
func (e *Engine) PlanFile() string {
	return e.configPaths.PlanFile
}

// loadPlan loads the plan file. A missing file is an empty plan.
func (e *Engine) loadPlan() (*plan.Store, error) {
	exists, err := e.planRepo.Exists(e.configPaths.PlanFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan file: %w", err)
	}
	if !exists {
		return plan.New(), nil
	}

	return e.planRepo.Load(e.configPaths.PlanFile)
}

// updatePlan loads the plan, applies fn and saves the result.
// Nothing is written when fn fails.
func (e *Engine) updatePlan(fn func(store *plan.Store) error) (*plan.Store, error) {
	store, err := e.loadPlan()
	if err != nil {
		return nil, err
	}

	if err := fn(store); err != nil {
		return nil, err
	}

	if err := e.planRepo.Save(e.configPaths.PlanFile, store); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	return store, nil
}

// semesterSlot converts a 1-based semester number to a slot index.
func semesterSlot(semester int) (int, error) {
	slot := semester - 1
	if !plan.ValidSlot(slot) {
		return 0, fmt.Errorf("%w: %d (must be 1-%d)", plan.ErrInvalidSlot, semester, plan.NumSlots)
	}
	return slot, nil
}
