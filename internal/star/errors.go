package star

import (
	"errors"
	"fmt"
)

// Domain errors for structure integration.
var (
	// ErrBadGrid indicates a radial grid that is not uniform and strictly increasing.
	ErrBadGrid = errors.New("star: grid must be uniform and strictly increasing from 0")

	// ErrNonFinite indicates a NaN or Inf state during integration.
	ErrNonFinite = errors.New("star: non-finite state")

	// ErrSingular indicates the metric denominator r^2 - 2mr vanished away from the center.
	ErrSingular = errors.New("star: metric denominator vanished")
)

// StepError records where an integration run failed.
type StepError struct {
	Model   Model
	Index   int
	Radius  float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step %d (r=%.4f): %v", e.Model, e.Index, e.Radius, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
