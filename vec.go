package newton

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ClosestParameterVec is the multi-parameter counterpart of
// [ClosestParameter], for curves parameterized by more than one scalar, such
// as the (u, v) parameters of a surface. Each parameter axis has its own
// domain interval and its own closedness: a surface can be closed in u and
// open in v.
//
// The Newton direction is obtained by solving Hessian·d = gradient with a
// dense LU solve, which is appropriate for the small Hessians that occur
// here (2×2 for a surface).
type ClosestParameterVec struct {
	gamma  float64
	domain []Interval
	closed []bool
}

// NewClosestParameterVec returns a step computation for a parameter space
// with one interval and one closedness flag per axis. The damping factor
// defaults to 1.
func NewClosestParameterVec(domain []Interval, closed []bool) ClosestParameterVec {
	return ClosestParameterVec{
		gamma:  1.0,
		domain: domain,
		closed: closed,
	}
}

// WithGamma returns a copy of the step with damping factor gamma. The same
// contract as [ClosestParameter.WithGamma] applies: gamma must be in (0, 1],
// and on failure the receiver is unchanged.
func (n ClosestParameterVec) WithGamma(gamma float64) (ClosestParameterVec, error) {
	if gamma <= 0.0 || gamma > 1.0 {
		return n, fmt.Errorf("%w: gamma must be in (0, 1]", ErrInvalidParameter)
	}
	n.gamma = gamma
	return n, nil
}

// Gamma returns the damping factor.
func (n ClosestParameterVec) Gamma() float64 { return n.gamma }

// Dim returns the number of parameter axes.
func (n ClosestParameterVec) Dim() int { return len(n.domain) }

// Next computes the next parameter vector from the current one and
// precomputed derivatives at it. The Newton direction solves
// hessian·d = gradient; the damped direction is subtracted from param and
// each axis is constrained to its own interval, so every component of the
// result lies inside its domain.
//
// param, gradient, and hessian must all match the dimension of the domain,
// otherwise Next fails with [ErrInvalidParameter]. A singular or
// ill-conditioned Hessian, or one that produces a non-finite direction,
// fails with [ErrSingularMatrix].
func (n ClosestParameterVec) Next(param, gradient []float64, hessian mat.Matrix) ([]float64, error) {
	dim := len(n.domain)
	if len(n.closed) != dim {
		return nil, fmt.Errorf(
			"%w: %d domain intervals but %d closedness flags", ErrInvalidParameter, dim, len(n.closed),
		)
	}
	if len(param) != dim || len(gradient) != dim {
		return nil, fmt.Errorf(
			"%w: parameter has %d components and gradient %d, want %d",
			ErrInvalidParameter, len(param), len(gradient), dim,
		)
	}
	if r, c := hessian.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("%w: Hessian is %d×%d, want %d×%d", ErrInvalidParameter, r, c, dim, dim)
	}

	var direction mat.VecDense
	if err := direction.SolveVec(hessian, mat.NewVecDense(dim, gradient)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	next := make([]float64, dim)
	for i := range next {
		d := direction.AtVec(i)
		if !isFinite(d) {
			return nil, fmt.Errorf("%w: non-finite Newton direction in component %d", ErrSingularMatrix, i)
		}
		next[i] = n.domain[i].Constrain(param[i]-n.gamma*d, n.closed[i])
	}
	return next, nil
}
