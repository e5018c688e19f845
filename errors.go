package newton

import "errors"

// Failure kinds reported by this package. Call sites wrap these with
// additional context; match them with [errors.Is].
var (
	// ErrInvalidParameter indicates a configuration value outside its valid
	// range, such as a damping factor outside (0, 1], or derivative inputs
	// whose dimensions don't match the parameter domain. The failing call
	// leaves the step instance unchanged.
	ErrInvalidParameter = errors.New("newton: invalid parameter")

	// ErrNotInitialized indicates that the step was invoked on a [State]
	// that was never seeded with an initial parameter. This is an
	// integration error in the driver, not a numerical one.
	ErrNotInitialized = errors.New("newton: not initialized")

	// ErrSingularMatrix indicates that the Hessian could not be inverted at
	// the current parameter, so no next parameter exists for this iteration.
	// The driver decides whether to abort the solve or fall back to another
	// strategy.
	ErrSingularMatrix = errors.New("newton: singular matrix")
)
