package newton

import (
	"fmt"
	"math"
)

// Objective is the problem collaborator: it supplies the first and second
// derivatives of the squared distance from the query point to the curve, as
// functions of the curve parameter. Implementations belong to the curve
// representation, not to this package.
type Objective interface {
	// Gradient returns the first derivative of the squared-distance
	// objective at parameter t.
	Gradient(t float64) (float64, error)
	// Hessian returns the second derivative of the squared-distance
	// objective at parameter t.
	Hessian(t float64) (float64, error)
}

// TerminationStatus is the step's answer to "should iteration stop?".
type TerminationStatus int

const (
	NotTerminated TerminationStatus = iota
	Terminated
)

func (ts TerminationStatus) String() string {
	if ts == Terminated {
		return "terminated"
	}
	return "not terminated"
}

// ClosestParameter computes domain-constrained damped Newton steps toward the
// closest parameter on a curve. It is configured once per solve with the
// curve's parameter domain and topology, and then invoked once per iteration
// by an external driver.
//
// The zero value is not useful; use [NewClosestParameter]. Instances are
// immutable and safe to share between concurrent solves.
type ClosestParameter struct {
	gamma  float64
	domain Interval
	closed bool
}

// NewClosestParameter returns a step computation for a curve with the given
// parameter domain. closed indicates that the curve is closed, i.e. that
// domain.Lo and domain.Hi identify the same point on the curve and the
// parameter space wraps around. The damping factor defaults to 1, a full
// Newton step.
func NewClosestParameter(domain Interval, closed bool) ClosestParameter {
	return ClosestParameter{
		gamma:  1.0,
		domain: domain,
		closed: closed,
	}
}

// WithGamma returns a copy of the step with damping factor gamma, the
// fraction of the raw Newton step applied per iteration.
//
// Gamma must be in (0, 1] and defaults to 1. Zero would never make progress
// and values above one grow the step instead of damping it; both are rejected
// with [ErrInvalidParameter], leaving the receiver unchanged.
func (n ClosestParameter) WithGamma(gamma float64) (ClosestParameter, error) {
	if gamma <= 0.0 || gamma > 1.0 {
		return n, fmt.Errorf("%w: gamma must be in (0, 1]", ErrInvalidParameter)
	}
	n.gamma = gamma
	return n, nil
}

// Gamma returns the damping factor.
func (n ClosestParameter) Gamma() float64 { return n.gamma }

// Domain returns the parameter domain.
func (n ClosestParameter) Domain() Interval { return n.domain }

// Closed reports whether the parameter domain wraps around.
func (n ClosestParameter) Closed() bool { return n.closed }

// Next computes the next parameter from the current parameter t and
// precomputed derivatives of the objective at t. The raw Newton direction
// gradient/hessian is scaled by the damping factor, subtracted from t, and
// the result is constrained to the parameter domain, so the returned value
// always lies inside it.
//
// A Hessian that cannot be inverted (zero or non-finite), or a non-finite
// gradient, fails with [ErrSingularMatrix]; a NaN is never returned as a
// parameter.
func (n ClosestParameter) Next(t, gradient, hessian float64) (float64, error) {
	if hessian == 0 || !isFinite(hessian) {
		return 0, fmt.Errorf("%w: cannot invert Hessian %g", ErrSingularMatrix, hessian)
	}
	if !isFinite(gradient) {
		return 0, fmt.Errorf("%w: non-finite gradient %g", ErrSingularMatrix, gradient)
	}
	candidate := t - n.gamma*(gradient/hessian)
	return n.domain.Constrain(candidate, n.closed), nil
}

// NextIter advances state by one iteration, evaluating obj at the current
// parameter and storing the constrained next parameter back into state.
//
// The state must have been seeded with an initial parameter, otherwise
// NextIter fails with [ErrNotInitialized]. Errors from obj and from the step
// itself propagate unchanged; on error the state is left as it was.
func (n ClosestParameter) NextIter(obj Objective, state *State) error {
	t, ok := state.Param()
	if !ok {
		return fmt.Errorf(
			"%w: an initial parameter is required; seed the state with SetParam before iterating",
			ErrNotInitialized,
		)
	}
	gradient, err := obj.Gradient(t)
	if err != nil {
		return err
	}
	hessian, err := obj.Hessian(t)
	if err != nil {
		return err
	}
	next, err := n.Next(t, gradient, hessian)
	if err != nil {
		return err
	}
	state.param.set(next)
	state.iter++
	return nil
}

// Terminate reports whether iteration should stop. It never does: the step
// has no termination criterion of its own, and deciding when to stop is
// entirely the driver's responsibility.
func (n ClosestParameter) Terminate(*State) TerminationStatus {
	return NotTerminated
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
