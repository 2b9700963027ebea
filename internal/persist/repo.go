// Package persist reads and writes study plan files.
//
// A plan file is a single UTF-8 JSON document holding the course list, the
// next course id and the six semester slots (see plan.Document). Files are
// written atomically so an interrupted save never leaves a truncated plan.
//
// Key components:
//   - PlanRepo: Interface for loading and saving plan files
//   - FilePlanRepo: PlanRepo backed by fsops.FS
package persist

import (
	"fmt"

	"github.com/danieljhkim/studyplan/internal/fsops"
	"github.com/danieljhkim/studyplan/internal/plan"
)

// PlanRepo provides an interface for persisting study plans.
type PlanRepo interface {
	// Exists checks if a plan file exists at path.
	Exists(path string) (bool, error)

	// Load reads and decodes the plan file at path.
	Load(path string) (*plan.Store, error)

	// Save encodes and writes the plan to path atomically.
	Save(path string, store *plan.Store) error
}

// FilePlanRepo implements PlanRepo using files on disk.
type FilePlanRepo struct {
	fs fsops.FS
}

// NewFilePlanRepo creates a new FilePlanRepo.
func NewFilePlanRepo(fs fsops.FS) *FilePlanRepo {
	return &FilePlanRepo{fs: fs}
}

// Exists checks if a plan file exists at path.
func (r *FilePlanRepo) Exists(path string) (bool, error) {
	if err := r.fs.ValidatePlanPath(path); err != nil {
		return false, err
	}

	exists, err := r.fs.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w: failed to stat %s: %w", ErrIOFailure, path, err)
	}
	return exists, nil
}

// Load reads and decodes the plan file at path.
// Invalid records inside the file are dropped by plan.Decode.
func (r *FilePlanRepo) Load(path string) (*plan.Store, error) {
	if err := r.fs.ValidatePlanPath(path); err != nil {
		return nil, err
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIOFailure, path, err)
	}

	store, err := plan.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return store, nil
}

// Save encodes and writes the plan to path atomically.
func (r *FilePlanRepo) Save(path string, store *plan.Store) error {
	if err := r.fs.ValidatePlanPath(path); err != nil {
		return err
	}

	data, err := plan.Encode(store)
	if err != nil {
		return err
	}

	if err := r.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIOFailure, path, err)
	}

	return nil
}
