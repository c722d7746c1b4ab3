package puzzle

/*

Tests for the candidate grid representation.

*/

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

/*

shared test puzzles

testSolution is the unique solution of every solvable fixture
below; the fixtures differ only in which cells are blanked out.

*/

const (
	testSolution   = "461873592879526341253419678715234869394685217628791435946158723187362954532947186"
	testSearchA    = "001873502879020340203419678015230869394080210628791430906158723187062904532947106"
	testSearchB    = "461873092879500341253419678715230069394685217608791435946058723187000950532947186"
	testPropSolved = "060800502000526001053409678015204000304605217628001430906158700187360054530947080"
	testSeventeen  = "000000010400000000020000000000050407008000300001090000300400200050100000000806000"
)

var (
	// testSolution with only the center cell blanked
	testSingleBlank = testSolution[:40] + "0" + testSolution[41:]
	// two 1s in the first row: unsolvable
	testDupRow = "11" + strings.Repeat("0", 79)
	// a valid solution unrelated to testSolution
	testPermuted = "572984613981637452364521789826345971415796328739812546157269834298473165643158297"
	// testSolution with the second cell overwritten by a duplicate 4
	testDupRowSolution = testSolution[:1] + "4" + testSolution[2:]
	// testSolution with cells 1 and 11 exchanged: rows and columns
	// stay legal but two tiles are broken
	testBoxSwap = "7" + testSolution[1:10] + "4" + testSolution[11:]
)

// helperGrid builds a grid or fails the test.
func helperGrid(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%.20q...): unexpected error %v", s, err)
	}
	return g
}

/*

grid construction

*/

func TestFromStringSolved(t *testing.T) {
	g := helperGrid(t, testSolution)
	if !g.IsFullyKnown() {
		t.Errorf("Grid of a full solution: got undetermined squares")
	}
	for i := 1; i <= SquareCount; i++ {
		v, ok := g.Known(i)
		if !ok {
			t.Errorf("Square %d: got unknown, expected known", i)
		}
		if expected := int(testSolution[i-1] - '0'); v != expected {
			t.Errorf("Square %d: got %d, expected %d", i, v, expected)
		}
	}
	if count := g.CandidateCount(); count != 1 {
		t.Errorf("Candidate count of full solution: got %d, expected 1", count)
	}
}

func TestFromStringBlankMarkers(t *testing.T) {
	dotted := strings.Map(func(r rune) rune {
		if r == '0' {
			return '.'
		}
		return r
	}, testSearchA)
	zeros := helperGrid(t, testSearchA)
	dots := helperGrid(t, dotted)
	if !reflect.DeepEqual(zeros.values(), dots.values()) {
		t.Errorf("'.' and '0' blanks: got different grids")
	}
	if v, ok := zeros.Known(2); ok {
		t.Errorf("Blank square 2: got known value %d", v)
	}
	if pvals := zeros.squares[2].pvals; !reflect.DeepEqual(pvals, newIntsetRange(SideLength)) {
		t.Errorf("Blank square 2 candidates: got %v, expected 1-9", pvals)
	}
}

func TestFromStringFormatErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		message string
	}{
		{"too short", testSolution[:80],
			"Invalid request: Puzzle (80): Must be exactly 81 characters"},
		{"too long", testSolution + "1",
			"Invalid request: Puzzle (82): Must be exactly 81 characters"},
		{"bad character", testSolution[:5] + "x" + testSolution[6:],
			"Invalid request: Puzzle (x): Must be a digit or '.'"},
	}
	for _, c := range cases {
		g, err := FromString(c.input)
		if g != nil || err == nil {
			t.Errorf("%s: got (%v, %v), expected a format error", c.name, g, err)
			continue
		}
		if !IsFormatError(err) {
			t.Errorf("%s: IsFormatError got false, expected true", c.name)
		}
		if err.Error() != c.message {
			t.Errorf("%s: got %q, expected %q", c.name, err.Error(), c.message)
		}
	}
}

/*

digit strings

*/

func TestDigitStringRoundTrip(t *testing.T) {
	g := helperGrid(t, testSolution)
	s, err := g.DigitString()
	if err != nil {
		t.Fatalf("DigitString of full solution: unexpected error %v", err)
	}
	if s != testSolution {
		t.Errorf("DigitString round trip: got %q, expected %q", s, testSolution)
	}
}

func TestDigitStringUndetermined(t *testing.T) {
	g := helperGrid(t, testSearchA)
	s, err := g.DigitString()
	if err == nil {
		t.Fatalf("DigitString of partial grid: got %q, expected an error", s)
	}
	e, ok := err.(Error)
	if !ok || e.Condition != NotFullyKnownCondition {
		t.Errorf("DigitString error: got %+v, expected NotFullyKnownCondition", err)
	}
}

/*

candidate counting

*/

func TestCandidateCount(t *testing.T) {
	// 17 blank squares, 9 candidates each
	g := helperGrid(t, testSearchA)
	expected := uint64(1)
	for i := 0; i < 17; i++ {
		expected *= 9
	}
	if count := g.CandidateCount(); count != expected {
		t.Errorf("Candidate count of 17 blanks: got %d, expected %d", count, expected)
	}
}

func TestCandidateCountSaturates(t *testing.T) {
	// 9^81 overflows uint64; the count must clamp, not wrap
	g := helperGrid(t, strings.Repeat(".", SquareCount))
	if count := g.CandidateCount(); count != uint64(math.MaxUint64) {
		t.Errorf("Candidate count of empty grid: got %d, expected MaxUint64", count)
	}
}

func TestCandidateCountEmptySet(t *testing.T) {
	g := helperGrid(t, testSolution)
	g.squares[1].pvals = intset{}
	if count := g.CandidateCount(); count != 0 {
		t.Errorf("Candidate count with an emptied square: got %d, expected 0", count)
	}
}

/*

eliminations

*/

func TestEliminate(t *testing.T) {
	g := helperGrid(t, strings.Repeat("0", SquareCount))
	if !g.eliminate(1, 5) {
		t.Errorf("First elimination of 5: got false, expected true")
	}
	if g.eliminate(1, 5) {
		t.Errorf("Repeated elimination of 5: got true, expected false")
	}
	expected := intset{1, 2, 3, 4, 6, 7, 8, 9}
	if !reflect.DeepEqual(g.squares[1].pvals, expected) {
		t.Errorf("Candidates after elimination: got %v, expected %v", g.squares[1].pvals, expected)
	}
	if errs := g.Errors(); len(errs) != 0 {
		t.Errorf("Errors after benign elimination: got %v, expected none", errs)
	}
}

func TestEliminateContradiction(t *testing.T) {
	g := helperGrid(t, strings.Repeat("0", SquareCount))
	for v := 1; v <= SideLength; v++ {
		g.eliminate(5, v)
	}
	errs := g.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors after emptying square 5: got %d, expected 1", len(errs))
	}
	expected := Error{
		Scope:     SquareScope,
		Structure: AttributeValueStructure,
		Attribute: ValueAttribute,
		Condition: NoPossibleValuesCondition,
		Values:    ErrorData{5, 9},
	}
	if !reflect.DeepEqual(errs[0], expected) {
		t.Errorf("Contradiction error: got %+v, expected %+v", errs[0], expected)
	}
}

func TestGridCopy(t *testing.T) {
	g := helperGrid(t, testSearchA)
	c := g.copy()
	c.eliminate(2, 7)
	if reflect.DeepEqual(g.squares[2].pvals, c.squares[2].pvals) {
		t.Errorf("Copied grid shares candidate storage with the original")
	}
	if g.mapping != c.mapping {
		t.Errorf("Copied grid has its own mapping, expected the shared one")
	}
}

/*

intsets

*/

func TestIntsetInsert(t *testing.T) {
	ps := intset{2, 5, 8}
	if ps.insert(5) != true {
		t.Errorf("Insert of present 5: got false, expected true")
	}
	if ps.insert(1) != false {
		t.Errorf("Insert of absent 1: got true, expected false")
	}
	ps.insert(9)
	ps.insert(4)
	expected := intset{1, 2, 4, 5, 8, 9}
	if !reflect.DeepEqual(ps, expected) {
		t.Errorf("Set after inserts: got %v, expected %v", ps, expected)
	}
}

func TestIntsetRemove(t *testing.T) {
	ps := intset{1, 3, 7}
	if ps.remove(4) != false {
		t.Errorf("Remove of absent 4: got true, expected false")
	}
	if ps.remove(3) != true {
		t.Errorf("Remove of present 3: got false, expected true")
	}
	expected := intset{1, 7}
	if !reflect.DeepEqual(ps, expected) {
		t.Errorf("Set after removes: got %v, expected %v", ps, expected)
	}
}

func TestIntsetFind(t *testing.T) {
	ps := intset{2, 4, 6}
	cases := []struct {
		v     int
		where int
		found bool
	}{
		{1, 0, false},
		{2, 0, true},
		{3, 1, false},
		{6, 2, true},
		{7, 3, false},
	}
	for _, c := range cases {
		where, found := ps.find(c.v)
		if where != c.where || found != c.found {
			t.Errorf("find(%d): got (%d, %v), expected (%d, %v)",
				c.v, where, found, c.where, c.found)
		}
	}
}
