package usecase

import "errors"

var (
	// ErrNotFound maps to a 404 at the HTTP boundary.
	ErrNotFound = errors.New("not found")
	// ErrValidation maps to a 400.
	ErrValidation = errors.New("invalid input")
	// ErrCycle marks a parent chain that loops back on itself. The data is
	// corrupt at that point, so it surfaces as a 500 rather than being
	// walked forever.
	ErrCycle = errors.New("project hierarchy cycle detected")
)
