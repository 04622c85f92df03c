package search

// Run steps s until it reports Found or Exhausted and returns the final
// Step. A limit > 0 caps the number of Step calls; hitting it returns the
// last Continue step together with ErrStepLimit.
func Run(s Stepper, limit int) (Step, error) {
	var st Step
	for n := 0; limit <= 0 || n < limit; n++ {
		st = s.Step()
		if st.Outcome.Done() {
			return st, nil
		}
	}
	return st, ErrStepLimit
}
