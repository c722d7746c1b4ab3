// Package puzzle solves standard 9x9 Sudoku puzzles.
//
// Puzzles are expressed as 81-character strings in row-major
// (English reading) order, with digits 1-9 for filled cells and
// '0' or '.' for blanks.  For each cell the implementation
// maintains the set of digits still considered possible for it;
// constraint propagation shrinks those sets to a fixed point, and
// an exhaustive, budget-gated search over the remaining
// combinations resolves whatever ambiguity is left.  Solve is the
// entry point; Validate independently decides whether a completed
// assignment is legal.
package puzzle

import (
	"fmt"
	"strings"
)

/*

Pretty-printed grids in strings, for debugging and the CLI.

*/

// String gives a pretty-printed view of a grid.
func (g *Grid) String() string {
	return g.ValuesString(true) + g.ErrorsString()
}

// ValuesString returns a pretty-printed grid of the values.  If
// showCandidates is specified, undetermined squares with two
// candidates show their contents.
func (g *Grid) ValuesString(showCandidates bool) (result string) {
	if g == nil {
		return
	}
	// first put out the header
	result += " "
	for i := 0; i < SideLength; i++ {
		if i%TileLength != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", i+1)
	}
	result += "\n"
	// next are the rows, including the separator at the top
	for ri, rowhdr := 0, 'a'; ri < SideLength; ri, rowhdr = ri+1, rowhdr+1 {
		if ri%TileLength == 0 {
			result += " " + strings.Repeat("+---", SideLength) + "\n"
		}
		result += string(rowhdr)
		for i := 0; i < SideLength; i++ {
			s := g.squares[(ri*SideLength)+i+1]
			if i%TileLength != 0 {
				result += " "
			} else {
				result += "|"
			}
			switch {
			case len(s.pvals) == 1:
				result += fmt.Sprintf(" %d ", s.pvals[0])
			case len(s.pvals) == 2 && showCandidates:
				result += fmt.Sprintf("%d,%d", s.pvals[0], s.pvals[1])
			default:
				result += " _ "
			}
		}
		result += "\n"
	}
	return
}

// ErrorsString renders the grid's Errors, if any.
func (g *Grid) ErrorsString() (result string) {
	if g != nil {
		if elen := len(g.errors); elen > 0 {
			if elen > 1 {
				result += fmt.Sprintf("Errors (%d):\n", elen)
				for i, err := range g.errors {
					result += fmt.Sprintf("  #%d: %v\n", i+1, err)
				}
			} else {
				result += fmt.Sprintf("Error: %v\n", g.errors[0])
			}
		}
	}
	return
}
