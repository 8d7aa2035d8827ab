package utils

// FloorMod - Returns a modulo n mapped into [0, n), also for negative a.
// n must be positive.
func FloorMod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}
