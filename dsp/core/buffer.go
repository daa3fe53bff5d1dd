package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// EnsureRows returns a row table with n rows, reusing rows' backing array
// and each row's capacity where possible. Every row has length cols.
func EnsureRows(rows [][]float64, n, cols int) [][]float64 {
	if cap(rows) >= n {
		rows = rows[:n]
	} else {
		grown := make([][]float64, n)
		copy(grown, rows)
		rows = grown
	}

	for i := range rows {
		rows[i] = EnsureLen(rows[i], cols)
	}

	return rows
}
