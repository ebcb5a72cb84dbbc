package testutil

// Uniform returns a slice of length n filled with the given level.
// Handy for flat spectrum-level fixtures.
func Uniform(level float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level
	}
	return out
}

// Zeros returns a slice of length n filled with 0.0.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Uniform(1.0, n)
}

// UniformMatrix returns a rows-by-cols matrix filled with the given value.
func UniformMatrix(value float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = Uniform(value, cols)
	}
	return out
}
