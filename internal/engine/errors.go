package engine

import "errors"

var (
	// ErrPlanExists indicates init would overwrite an existing plan file.
	ErrPlanExists = errors.New("plan file already exists")
)
