package puzzle

/*

Candidate grid representation

*/

import (
	"math"
	"strings"
)

/*

Grids

*/

// A Grid is the canonical in-memory representation of solving
// state: one square per cell, each holding the set of digits still
// considered possible for it.  A square is known when its candidate
// set has exactly one element; a grid is solved when every square
// is known and the assignment validates.
//
// Grids track any Errors that make the puzzle unsolvable (a square
// whose candidate set was emptied by an elimination).  Ownership of
// a grid is exclusive to the in-flight solve call; nothing retains
// a reference to a grid across mutations.
type Grid struct {
	mapping *gridMapping
	squares []*square
	errors  []Error
}

// A square has an index and a set of possible values.
type square struct {
	index int
	pvals intset
}

// Blank cell markers accepted in the textual format.
const blankMarkers = "0."

// FromString creates a Grid from the 81-character textual format:
// row-major, digits 1-9 for filled cells, '0' or '.' for blanks.
// Anything else is a format Error.
func FromString(s string) (*Grid, error) {
	if len(s) != SquareCount {
		return nil, lengthError(PuzzleAttribute, len(s))
	}
	squares := make([]*square, SquareCount+1) // 1-based indices
	for i := 0; i < SquareCount; i++ {
		c := s[i]
		switch {
		case c >= '1' && c <= '9':
			squares[i+1] = &square{index: i + 1, pvals: intset{int(c - '0')}}
		case strings.IndexByte(blankMarkers, c) >= 0:
			squares[i+1] = &square{index: i + 1, pvals: newIntsetRange(SideLength)}
		default:
			return nil, characterError(PuzzleAttribute, i, c)
		}
	}
	return &Grid{mapping: standardMapping, squares: squares}, nil
}

// DigitString returns the 81-digit row-major concatenation of a
// fully known grid.  It is defined only when every square is known;
// otherwise it returns an Error.
func (g *Grid) DigitString() (string, error) {
	var sb strings.Builder
	sb.Grow(SquareCount)
	for i := 1; i <= SquareCount; i++ {
		if len(g.squares[i].pvals) != 1 {
			return "", Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: IndexAttribute,
				Condition: NotFullyKnownCondition,
				Values:    ErrorData{i},
			}
		}
		sb.WriteByte(byte('0' + g.squares[i].pvals[0]))
	}
	return sb.String(), nil
}

// Known returns the value of a square and whether the square is
// known (has exactly one candidate).
func (g *Grid) Known(index int) (int, bool) {
	if len(g.squares[index].pvals) == 1 {
		return g.squares[index].pvals[0], true
	}
	return 0, false
}

// IsFullyKnown reports whether every square has exactly one
// candidate.
func (g *Grid) IsFullyKnown() bool {
	for i := 1; i <= SquareCount; i++ {
		if len(g.squares[i].pvals) != 1 {
			return false
		}
	}
	return true
}

// CandidateCount returns the product of the candidate-set sizes
// over all squares: an upper bound on the number of distinct
// completions, used as the combinatorial budget gate.  The product
// saturates at MaxUint64, which still compares correctly against
// any configurable budget.
func (g *Grid) CandidateCount() uint64 {
	count := uint64(1)
	for i := 1; i <= SquareCount; i++ {
		n := uint64(len(g.squares[i].pvals))
		if n == 0 {
			return 0
		}
		if count > math.MaxUint64/n {
			return math.MaxUint64
		}
		count *= n
	}
	return count
}

// Errors returns the grid's Errors.  The returned slice doesn't
// share storage with the grid.
func (g *Grid) Errors() []Error {
	return append([]Error(nil), g.errors...)
}

// eliminate removes a digit from a square's candidate set,
// reporting whether anything was removed.  If the set becomes
// empty, the grid records a contradiction Error: the puzzle is
// unsolvable, and the caller must stop mutating it.
func (g *Grid) eliminate(index, digit int) bool {
	s := g.squares[index]
	if !s.pvals.remove(digit) {
		return false
	}
	if len(s.pvals) == 0 {
		g.errors = append(g.errors, contradictionError(index, digit))
	}
	return true
}

// values returns the known value of every square in index order,
// with 0 for undetermined squares.
func (g *Grid) values() []int {
	vs := make([]int, SquareCount)
	for i := 1; i <= SquareCount; i++ {
		if v, ok := g.Known(i); ok {
			vs[i-1] = v
		}
	}
	return vs
}

// copy returns a deep copy of a grid.
func (g *Grid) copy() *Grid {
	if g == nil {
		return nil
	}
	c := &Grid{
		mapping: g.mapping, // mappings are invariant and always shared
		errors:  g.Errors(),
	}
	c.squares = make([]*square, SquareCount+1) // 1-based indexing
	for i := 1; i <= SquareCount; i++ {
		c.squares[i] = &square{
			index: g.squares[i].index,
			pvals: newIntsetCopy(g.squares[i].pvals),
		}
	}
	return c
}

/*

Integer sets

*/

// An intset is a set of integers, represented as a sorted slice.
// We use intsets to represent both sets of possible values for
// squares and sets of indices.
type intset []int

// newIntsetRange: Make an intset from a range of values, 1 to max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// newIntsetCopy: Make a copy of an intset.
func newIntsetCopy(in intset) intset {
	if in == nil {
		return nil
	}
	out := make(intset, len(in))
	copy(out, in)
	return out
}

// Find value v, returning where it should be in the intset and
// whether it was found there.
func (ps *intset) find(v int) (int, bool) {
	end := len(*ps)
	where := end
	for i := 0; i < end; i++ {
		if (*ps)[i] == v {
			return i, true
		}
		if (*ps)[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// Insert value v, returning whether it was there already.
func (ps *intset) insert(v int) bool {
	end := len(*ps)
	where, found := ps.find(v)
	if found {
		return true
	}
	// insert by lengthening, shifting, inserting
	*ps = append(*ps, v)
	if where < end {
		copy((*ps)[where+1:], (*ps)[where:])
		(*ps)[where] = v
	}
	return false
}

// Remove value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
