package newton

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestConstrainInside(t *testing.T) {
	iv := Iv(0, 10)
	for _, c := range []float64{0, 1e-9, 0.5, 5, 9.999999, 10} {
		for _, closed := range []bool{false, true} {
			diff(t, c, iv.Constrain(c, closed))
		}
	}
}

func TestConstrainOpenClamps(t *testing.T) {
	iv := Iv(-1, 3)
	tests := []struct {
		c    float64
		want float64
	}{
		{-1.0000001, -1},
		{-50, -1},
		{3.0000001, 3},
		{100, 3},
	}
	for _, tt := range tests {
		got := iv.Constrain(tt.c, false)
		diff(t, tt.want, got)
		// Clamping is idempotent.
		diff(t, got, iv.Constrain(got, false))
	}
}

func TestConstrainClosedWraps(t *testing.T) {
	iv := Iv(0, 10)
	for _, delta := range []float64{0.001, 0.25, 1, 2.5, 5, 9.9} {
		below := iv.Constrain(iv.Lo-delta, true)
		diff(t, iv.Hi-delta, below, cmpopts.EquateApprox(0, 1e-12))
		if below < iv.Lo || below >= iv.Hi {
			t.Errorf("wrapped %g below the domain to %g, outside [%g, %g)", iv.Lo-delta, below, iv.Lo, iv.Hi)
		}

		above := iv.Constrain(iv.Hi+delta, true)
		diff(t, iv.Lo+delta, above, cmpopts.EquateApprox(0, 1e-12))
		if above <= iv.Lo || above > iv.Hi {
			t.Errorf("wrapped %g above the domain to %g, outside (%g, %g]", iv.Hi+delta, above, iv.Lo, iv.Hi)
		}
	}
}

func TestConstrainClosedFullSpanOvershoot(t *testing.T) {
	// An overshoot of exactly one span lands back on the opposite boundary.
	iv := Iv(2, 6)
	diff(t, iv.Lo, iv.Constrain(iv.Lo-iv.Span(), true))
	diff(t, iv.Hi, iv.Constrain(iv.Hi+iv.Span(), true))
}

func TestSpan(t *testing.T) {
	diff(t, 10.0, Iv(0, 10).Span())
	diff(t, 4.0, Iv(-1, 3).Span())
	diff(t, 0.0, Iv(7, 7).Span())
}

func TestIntervalString(t *testing.T) {
	diff(t, "[0, 6.28]", Iv(0, 6.28).String())
}
