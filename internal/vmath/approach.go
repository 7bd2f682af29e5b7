package vmath

import "math"

// ApproachF moves *v toward target by (target-*v)*fraction, with the step
// capped at ±maxStep. The value never overshoots target.
func ApproachF(v *float64, target, fraction, maxStep float64) {
	if *v == target {
		return
	}
	step := (target - *v) * fraction
	if step > maxStep {
		step = maxStep
	} else if step < -maxStep {
		step = -maxStep
	}
	*v += step
	if (step > 0 && *v > target) || (step < 0 && *v < target) {
		*v = target
	}
}

// ApproachZeroF decays *v toward zero by *v*fraction, capped at ±maxStep.
func ApproachZeroF(v *float64, fraction, maxStep float64) {
	step := *v * fraction
	if step > maxStep {
		step = maxStep
	} else if step < -maxStep {
		step = -maxStep
	}
	*v -= step
}

// ApproachS moves the binary angle *v toward target by (target-*v)/scale,
// limited to ±step. The difference is taken with wraparound.
func ApproachS(v *int16, target, scale, step int16) {
	diff := target - *v
	diff /= scale
	switch {
	case diff > step:
		*v += step
	case diff < -step:
		*v -= step
	default:
		*v += diff
	}
}

// SmoothStepToS eases the binary angle *v toward target by diff/scale,
// clamped to ±step and at least minStep. It returns the difference measured
// before the step.
func SmoothStepToS(v *int16, target, scale, step, minStep int16) int16 {
	diff := target - *v
	if *v == target {
		return diff
	}
	stepSize := diff / scale
	if stepSize > minStep || stepSize < -minStep {
		if stepSize > step {
			stepSize = step
		}
		if stepSize < -step {
			stepSize = -step
		}
		*v += stepSize
		return diff
	}
	if diff >= 0 {
		*v += minStep
		if target-*v <= 0 {
			*v = target
		}
	} else {
		*v -= minStep
		if target-*v >= 0 {
			*v = target
		}
	}
	return diff
}

// SmoothStepToF eases *v toward target by (target-*v)*fraction, clamped to
// ±step, moving at least minStep. It returns the remaining distance.
func SmoothStepToF(v *float64, target, fraction, step, minStep float64) float64 {
	if *v != target {
		stepSize := (target - *v) * fraction
		if stepSize >= minStep || stepSize <= -minStep {
			stepSize = math.Max(-step, math.Min(step, stepSize))
			*v += stepSize
		} else if target > *v {
			*v = math.Min(target, *v+minStep)
		} else {
			*v = math.Max(target, *v-minStep)
		}
	}
	return math.Abs(target - *v)
}
