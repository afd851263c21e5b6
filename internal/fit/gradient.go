package fit

// gradientDescentBounded runs projected finite-difference gradient descent
// from start. Each iteration takes a full step against the forward-difference
// gradient, projects the trial into bounds, and backtracks by halving the
// step size (always re-stepping from the original point, not the failed
// trial) until the objective improves or the backtrack cap is hit. A trial
// is accepted only when it improves on the previous value by more than
// cfg.ImprovementTol; otherwise the descent stops early. The result is never
// worse than the projected start.
func gradientDescentBounded(objective func([]float64) float64, start []float64, cfg Config) []float64 {
	current := projectToBounds(start, cfg)
	currentValue := objective(current)

	for iter := 0; iter < cfg.GradMaxIterations; iter++ {
		gradient := make([]float64, len(current))
		for j := range current {
			h := current[j] * cfg.GradEps
			if current[j] == 0 {
				h = cfg.GradEps
			}
			perturbed := make([]float64, len(current))
			copy(perturbed, current)
			perturbed[j] += h
			gradient[j] = (objective(perturbed) - currentValue) / h
		}

		alpha := cfg.GradAlpha
		var trial []float64
		trialValue := currentValue
		accepted := false
		for bt := 0; bt <= cfg.GradMaxBacktracks; bt++ {
			trial = make([]float64, len(current))
			for j := range trial {
				trial[j] = current[j] - alpha*gradient[j]
			}
			trial = projectToBounds(trial, cfg)
			trialValue = objective(trial)
			if trialValue < currentValue {
				accepted = true
				break
			}
			alpha /= 2
		}

		if !accepted {
			break
		}
		improvement := currentValue - trialValue
		current = trial
		currentValue = trialValue
		if improvement <= cfg.ImprovementTol {
			break
		}
	}

	return current
}
