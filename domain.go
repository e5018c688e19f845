package newton

import "fmt"

// Interval is the valid range [Lo, Hi] of a curve parameter, typically the
// knot domain of a NURBS curve. Lo ≤ Hi is assumed; the interval is taken as
// given from the curve's metadata and not re-validated here.
type Interval struct {
	Lo float64
	Hi float64
}

// Iv returns the interval [lo, hi].
func Iv(lo, hi float64) Interval {
	return Interval{
		Lo: lo,
		Hi: hi,
	}
}

// Span returns the width of the interval.
func (iv Interval) Span() float64 {
	return iv.Hi - iv.Lo
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// Constrain maps a candidate parameter back into the interval.
//
// For a closed curve the domain is circular: Lo and Hi identify the same point
// on the curve, and a candidate that overshoots one end re-enters from the
// other end by the overshoot amount. For an open curve the ends are hard
// boundaries and the candidate is clamped to the one it violated. Candidates
// already inside the interval are returned unchanged.
//
// The wrap is applied once. A candidate more than one span outside the
// interval stays outside; damping keeps step overshoot below one span for any
// reasonably conditioned problem, and a result that far out means the
// iteration is diverging anyway.
func (iv Interval) Constrain(c float64, closed bool) float64 {
	switch {
	case c < iv.Lo:
		if closed {
			return iv.Hi - (iv.Lo - c)
		}
		return iv.Lo
	case c > iv.Hi:
		if closed {
			return iv.Lo + (c - iv.Hi)
		}
		return iv.Hi
	default:
		return c
	}
}
