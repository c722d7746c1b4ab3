package puzzle

/*

Validation

A completed assignment is viewed as a 9x9x9 indicator cube whose
third axis is the assigned digit (one-hot per cell).  A legal
solution has exactly one of each digit when summing over columns
within a row, over rows within a column, and within each tile.
The one-digit-per-cell precondition is structural: violating it is
a usage error, reported as an Error, not as an invalid solution.

*/

// A cube is the indicator form of an assignment.  cube[r][c][d] is
// 1 when digit d+1 is assigned to the cell at row r, column c.
type cube [SideLength][SideLength][SideLength]int8

// set assigns a digit to a cell, clearing any previous digit.
func (c *cube) set(row, col, digit int) {
	c[row][col][digit-1] = 1
}

// retract removes a digit from a cell.
func (c *cube) retract(row, col, digit int) {
	c[row][col][digit-1] = 0
}

// valid decides legality of the assignment.  A structural violation
// (a cell without exactly one digit) is an Error; a well-formed but
// illegal assignment is (false, nil).
func (c *cube) valid() (bool, error) {
	// structural precondition: one digit per cell
	for r := 0; r < SideLength; r++ {
		for cl := 0; cl < SideLength; cl++ {
			n := 0
			for d := 0; d < SideLength; d++ {
				n += int(c[r][cl][d])
			}
			if n != 1 {
				return false, shapeError(r, cl, n)
			}
		}
	}
	// row uniqueness: each digit once per row
	for r := 0; r < SideLength; r++ {
		for d := 0; d < SideLength; d++ {
			n := 0
			for cl := 0; cl < SideLength; cl++ {
				n += int(c[r][cl][d])
			}
			if n != 1 {
				return false, nil
			}
		}
	}
	// column uniqueness: each digit once per column
	for cl := 0; cl < SideLength; cl++ {
		for d := 0; d < SideLength; d++ {
			n := 0
			for r := 0; r < SideLength; r++ {
				n += int(c[r][cl][d])
			}
			if n != 1 {
				return false, nil
			}
		}
	}
	// tile uniqueness: each digit once per tile
	for br := 0; br < SideLength; br += TileLength {
		for bc := 0; bc < SideLength; bc += TileLength {
			for d := 0; d < SideLength; d++ {
				n := 0
				for r := br; r < br+TileLength; r++ {
					for cl := bc; cl < bc+TileLength; cl++ {
						n += int(c[r][cl][d])
					}
				}
				if n != 1 {
					return false, nil
				}
			}
		}
	}
	return true, nil
}

// cubeFromDigits builds a cube from 81 row-major values.  Zero
// values leave the cell without a digit, which the structural
// precondition will catch.
func cubeFromDigits(digits []int) *cube {
	var c cube
	for i, v := range digits {
		if v != 0 {
			c.set(i/SideLength, i%SideLength, v)
		}
	}
	return &c
}

// Validate decides whether an 81-character candidate string is a
// legal solution.  The string format errors of FromString apply; a
// candidate with blank cells fails the structural precondition and
// yields a shape Error, distinct from the false legality result.
func Validate(candidate string) (bool, error) {
	if len(candidate) != SquareCount {
		return false, lengthError(CandidateAttribute, len(candidate))
	}
	digits := make([]int, SquareCount)
	for i := 0; i < SquareCount; i++ {
		c := candidate[i]
		switch {
		case c >= '1' && c <= '9':
			digits[i] = int(c - '0')
		case c == '0' || c == '.':
			// left unset; caught as a shape violation below
		default:
			return false, characterError(CandidateAttribute, i, c)
		}
	}
	return cubeFromDigits(digits).valid()
}
