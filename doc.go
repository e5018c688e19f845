// Package newton implements the inner step of a damped Newton iteration for
// point inversion: finding the parameter on a parametric curve (such as a NURBS
// curve) that is closest to a query point.
//
// The package deliberately implements only the step, not the solve. An external
// driver owns the optimization loop: it seeds an initial parameter, calls the
// step once per iteration, and decides when to stop. An external problem
// collaborator supplies the first and second derivatives of the
// squared-distance objective at each parameter value. What remains is the one
// place where the design is non-trivial:
// applying an unconstrained Newton update while keeping the parameter inside
// the curve's domain, wrapping around for closed curves and clamping for open
// ones.
//
// # Step types
//
// [ClosestParameter] is the scalar step, for curves parameterized by a single
// value. [ClosestParameterVec] is its multi-parameter counterpart, for
// surface-style parameterizations; it inverts a small dense Hessian per step.
// Both are immutable after construction and safe for concurrent use.
//
// # Domain constraint
//
// A raw Newton update knows nothing about the parameter domain. After damping,
// the candidate parameter is mapped back into the domain by
// [Interval.Constrain]: a closed curve treats its domain as circular, so
// overshooting one end re-enters from the other by the same amount, while an
// open curve pins the candidate to the violated boundary. The returned
// parameter is always inside the domain.
//
// # Literature
//
// Point inversion and projection for curves and surfaces is described in
// section 6.1 of [The NURBS Book] by Piegl and Tiller.
//
// [The NURBS Book]: https://link.springer.com/book/10.1007/978-3-642-59223-2
package newton
