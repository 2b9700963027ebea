package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/studyplan/internal/plan"
)

// Init writes a new, empty plan file, optionally seeded with the example
// catalogue. An existing file is only replaced when req.Force is set.
func (e *Engine) Init(ctx context.Context, req *InitRequest) (*InitResult, error) {
	path := e.configPaths.PlanFile

	exists, err := e.planRepo.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan file: %w", err)
	}
	if exists && !req.Force {
		return nil, fmt.Errorf("%w: %s", ErrPlanExists, path)
	}

	store := plan.New()
	seeded := []CourseInfo{}
	if req.Seed {
		for _, c := range plan.SeedExamples(store) {
			seeded = append(seeded, newCourseInfo(store, c))
		}
	}

	if err := e.planRepo.Save(path, store); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	return &InitResult{
		PlanFile:    path,
		Overwritten: exists,
		Seeded:      seeded,
	}, nil
}
