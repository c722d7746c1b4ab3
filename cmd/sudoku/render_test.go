package main

import (
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
)

const (
	renderPuzzle   = "001873502879020340203419678015230869394080210628791430906158723187062904532947106"
	renderSolution = "461873592879526341253419678715234869394685217628791435946158723187362954532947186"
)

func TestRenderGridBare(t *testing.T) {
	au := aurora.NewAurora(false)
	out := renderGrid(renderPuzzle, "", au)
	lines := strings.Split(out, "\n")
	if len(lines) != 13 {
		t.Fatalf("Line count: got %d, expected 13", len(lines))
	}
	if lines[0] != "┌─────────┬─────────┬─────────┐" {
		t.Errorf("Top border: got %q", lines[0])
	}
	if lines[12] != "└─────────┴─────────┴─────────┘" {
		t.Errorf("Bottom border: got %q", lines[12])
	}
	// first row: two blanks, then the given 1
	if !strings.HasPrefix(lines[1], "│ .  . (1)") {
		t.Errorf("First row: got %q", lines[1])
	}
	if strings.Count(out, " . ") != strings.Count(renderPuzzle, "0") {
		t.Errorf("Blank count: got %d, expected %d",
			strings.Count(out, " . "), strings.Count(renderPuzzle, "0"))
	}
}

func TestRenderGridOverlay(t *testing.T) {
	au := aurora.NewAurora(false)
	out := renderGrid(renderPuzzle, renderSolution, au)
	if strings.Contains(out, " . ") {
		t.Errorf("Overlay left blanks in:\n%s", out)
	}
	// solved-in cells print bare, givens keep their parentheses
	if !strings.HasPrefix(strings.Split(out, "\n")[1], "│ 4  6 (1)") {
		t.Errorf("First row: got %q", strings.Split(out, "\n")[1])
	}
}

func TestRenderGridDotBlanks(t *testing.T) {
	au := aurora.NewAurora(false)
	dotted := strings.ReplaceAll(renderPuzzle, "0", ".")
	if renderGrid(dotted, "", au) != renderGrid(renderPuzzle, "", au) {
		t.Errorf("'.' and '0' blanks render differently")
	}
}
