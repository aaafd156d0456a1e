// Validation helpers enforcing parameter contracts in Constructor factories.
//
// Each function returns a configErrorf error when its precondition is violated.
package builder

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return configErrorf(method, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateRange ensures lo ≤ got ≤ hi.
func validateRange(method, name string, got, lo, hi int) error {
	if got < lo || got > hi {
		return configErrorf(method, "%s=%d not in [%d,%d]", name, got, lo, hi)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return configErrorf(method, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateDims ensures every lattice dimension is ≥ MinLatticeDim.
func validateDims(method string, dims ...int) error {
	for _, d := range dims {
		if d < MinLatticeDim {
			return configErrorf(method, "dimensions %v must be ≥ %d", dims, MinLatticeDim)
		}
	}

	return nil
}
