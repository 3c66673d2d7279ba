// Package gaussjordan reduces augmented matrices to reduced row-echelon
// form in place. The routines are free functions over an explicit matrix
// so they carry no state between calls.
package gaussjordan

// Float constrains the element type of a matrix to a floating point
// representation. All arithmetic runs in that representation.
type Float interface {
	~float32 | ~float64
}

// DivideRow scales every entry of row to the right of pivotCol by the
// pivot value and then sets the pivot entry to exactly 1, so rounding in
// the division can never leave a non-unit pivot behind.
func DivideRow[F Float](m [][]F, row, pivotCol int) {
	r := m[row]
	piv := r[pivotCol]
	for j := pivotCol + 1; j < len(r); j++ {
		r[j] /= piv
	}
	r[pivotCol] = 1
}

// Eliminate subtracts multiples of pivotRow from every other row with a
// nonzero entry in pivotCol, then sets that entry to exactly 0. Assumes
// the pivot entry of pivotRow is already 1.
func Eliminate[F Float](m [][]F, pivotRow, pivotCol int) {
	p := m[pivotRow]
	for i := range m {
		if i == pivotRow {
			continue
		}
		r := m[i]
		f := r[pivotCol]
		if f == 0 {
			continue
		}
		for j := pivotCol + 1; j < len(r); j++ {
			r[j] -= f * p[j]
		}
		r[pivotCol] = 0
	}
}

// Echelonize reduces m to reduced row-echelon form in place. The pivot for
// each column is the first row at or below the cursor with a nonzero entry
// in that column; no magnitude-based pivoting is attempted. A column with
// no available pivot is skipped, which on singular or rank-deficient
// systems leaves the affected rows unreduced and their trailing entries
// meaningless. Callers wanting to reject such systems must check on their
// own; nothing is detected or reported here.
func Echelonize[F Float](m [][]F) {
	rows := len(m)
	if rows == 0 {
		return
	}
	cols := len(m[0])

	var i, j int
	for i < rows && j < cols {
		k := i
		for k < rows && m[k][j] == 0 {
			k++
		}
		if k == rows {
			j++
			continue
		}
		if k != i {
			m[i], m[k] = m[k], m[i]
		}
		if m[i][j] != 1 {
			DivideRow(m, i, j)
		}
		Eliminate(m, i, j)
		i++
		j++
	}
}
