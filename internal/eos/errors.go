package eos

import "errors"

// Domain errors for the equation of state and the central-density solver.
var (
	// ErrNegativePressure indicates the EOS was asked to invert a negative pressure.
	ErrNegativePressure = errors.New("eos: negative pressure")

	// ErrNoConvergence indicates Newton-Raphson exhausted its iteration budget.
	ErrNoConvergence = errors.New("eos: newton-raphson did not converge")

	// ErrFlatDerivative indicates the Newton-Raphson derivative vanished.
	ErrFlatDerivative = errors.New("eos: newton-raphson derivative vanished")

	// ErrBadConstants indicates an inconsistent physical constants table.
	ErrBadConstants = errors.New("eos: invalid physical constants")

	// ErrBadTarget indicates a non-positive target central density.
	ErrBadTarget = errors.New("eos: target central density must be positive")
)
