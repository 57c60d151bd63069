package planner

import "errors"

// Domain errors for plan optimization

var (
	// ErrInfeasible means no trial assembled the requested number of
	// distinct meals within budget. Recoverable: the caller can relax the
	// budget or lower the meal count.
	ErrInfeasible = errors.New("no feasible meal selection within budget")

	// ErrNoCandidates means the pools were empty after filtering
	ErrNoCandidates = errors.New("candidate pools are empty")

	// ErrInvalidMealsCount guards the optimizer's preconditions
	ErrInvalidMealsCount = errors.New("meals count must be greater than 0")
)
