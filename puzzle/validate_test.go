package puzzle

/*

Tests for solution validation.

*/

import (
	"strings"
	"testing"
)

func TestValidateLegality(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		expected  bool
	}{
		{"known solution", testSolution, true},
		{"unrelated solution", testPermuted, true},
		{"duplicate in a row", testDupRowSolution, false},
		{"broken tiles", testBoxSwap, false},
	}
	for _, c := range cases {
		valid, err := Validate(c.candidate)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if valid != c.expected {
			t.Errorf("%s: got %v, expected %v", c.name, valid, c.expected)
		}
	}
}

func TestValidateShapeError(t *testing.T) {
	// a blank cell is a structural violation, not an illegal solution
	valid, err := Validate(testSingleBlank)
	if valid || err == nil {
		t.Fatalf("Candidate with a blank: got (%v, %v), expected a shape error", valid, err)
	}
	if !IsShapeError(err) {
		t.Errorf("IsShapeError: got false, expected true")
	}
	expected := "Invalid argument: Candidate (r5c5): Cell must hold exactly one digit, has 0"
	if err.Error() != expected {
		t.Errorf("Shape error: got %q, expected %q", err.Error(), expected)
	}
}

func TestValidateFormatErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too short", testSolution[:80]},
		{"too long", testSolution + "9"},
		{"bad character", "z" + testSolution[1:]},
	}
	for _, c := range cases {
		valid, err := Validate(c.input)
		if valid || err == nil {
			t.Errorf("%s: got (%v, %v), expected a format error", c.name, valid, err)
			continue
		}
		if !IsFormatError(err) {
			t.Errorf("%s: IsFormatError got false, expected true", c.name)
		}
		e := err.(Error)
		if e.Attribute != CandidateAttribute {
			t.Errorf("%s: attribute got %v, expected CandidateAttribute", c.name, e.Attribute)
		}
	}
}

func TestCubeSetRetract(t *testing.T) {
	var c cube
	c.set(0, 0, 5)
	if c[0][0][4] != 1 {
		t.Errorf("set(0, 0, 5): indicator not set")
	}
	c.retract(0, 0, 5)
	if c[0][0][4] != 0 {
		t.Errorf("retract(0, 0, 5): indicator not cleared")
	}
}

func TestCubeDoubleAssignment(t *testing.T) {
	// two digits in one cell must be a shape error, not false
	g := helperGrid(t, testSolution)
	cb := cubeFromDigits(g.values())
	cb.set(3, 7, 1)
	cb.set(3, 7, 2)
	valid, err := cb.valid()
	if valid || !IsShapeError(err) {
		t.Errorf("Doubly assigned cell: got (%v, %v), expected a shape error", valid, err)
	}
}

func TestValidateAllBlank(t *testing.T) {
	valid, err := Validate(strings.Repeat(".", SquareCount))
	if valid || !IsShapeError(err) {
		t.Errorf("All-blank candidate: got (%v, %v), expected a shape error", valid, err)
	}
}
