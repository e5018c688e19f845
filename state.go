package newton

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

// State is the driver-owned state of one closest-parameter solve: the current
// parameter estimate and an iteration counter. The driver seeds it with
// [State.SetParam] before the first iteration; [ClosestParameter.NextIter]
// advances it. The zero value is an unseeded state.
//
// State carries no convergence information. Detecting convergence, stagnation,
// or an iteration limit is the driver's job.
type State struct {
	param option[float64]
	iter  int
}

// SetParam sets the current parameter estimate. The driver calls this once
// with the initial guess; it may also call it mid-solve to restart from a
// different parameter.
func (s *State) SetParam(t float64) {
	s.param.set(t)
}

// Param returns the current parameter estimate, and whether one has been set.
func (s *State) Param() (float64, bool) {
	return s.param.value, s.param.isSet
}

// Iteration returns the number of completed iterations.
func (s *State) Iteration() int {
	return s.iter
}

// Reset returns the state to its unseeded zero value, allowing it to be
// reused for another solve.
func (s *State) Reset() {
	s.param.clear()
	s.iter = 0
}
