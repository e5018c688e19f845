package newton_test

import (
	"fmt"
	"math"

	"github.com/curvemath/newton"
)

// circleDistance is the squared distance from a fixed query point to the
// point at angle t on a circle of radius r centered at the origin:
//
//	f(t)   = r² + qx² + qy² − 2r(qx·cos t + qy·sin t)
//	f'(t)  = 2r(qx·sin t − qy·cos t)
//	f''(t) = 2r(qx·cos t + qy·sin t)
type circleDistance struct {
	r      float64
	qx, qy float64
}

func (c circleDistance) Gradient(t float64) (float64, error) {
	return 2 * c.r * (c.qx*math.Sin(t) - c.qy*math.Cos(t)), nil
}

func (c circleDistance) Hessian(t float64) (float64, error) {
	return 2 * c.r * (c.qx*math.Cos(t) + c.qy*math.Sin(t)), nil
}

func Example() {
	// Find the angle on the unit circle closest to the point (1, 1). The
	// circle is a closed curve, so the parameter space wraps at 2π.
	obj := circleDistance{r: 1, qx: 1, qy: 1}
	step := newton.NewClosestParameter(newton.Iv(0, 2*math.Pi), true)

	// A minimal driver loop. The step itself never terminates; the driver
	// owns the convergence decision.
	var state newton.State
	state.SetParam(1.0)
	for i := 0; i < 20; i++ {
		prev, _ := state.Param()
		if err := step.NextIter(obj, &state); err != nil {
			fmt.Println(err)
			return
		}
		if cur, _ := state.Param(); math.Abs(cur-prev) < 1e-12 {
			break
		}
	}

	t, _ := state.Param()
	fmt.Printf("closest angle: %.4f after %d iterations (π/4 = %.4f)\n",
		t, state.Iteration(), math.Pi/4)
	// Output:
	// closest angle: 0.7854 after 4 iterations (π/4 = 0.7854)
}
