package main

/*

Grid rendering

*/

import (
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
)

// colorizer returns an aurora instance that colors output only
// when the writer is a terminal.
// (see http://stackoverflow.com/questions/22744443/ for source)
func colorizer(out *os.File) aurora.Aurora {
	color := false
	if stat, _ := out.Stat(); stat != nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		color = true
	}
	return aurora.NewAurora(color)
}

func isBlank(c byte) bool {
	return c == '0' || c == '.'
}

// renderGrid draws an 81-character puzzle in a box-drawing frame,
// three characters per cell.  Given digits print as (n), blanks as
// a centered dot.  When solution is non-empty, the solved-in digits
// are overlaid and colored green.
func renderGrid(puzzleString, solution string, au aurora.Aurora) string {
	hzLine := strings.Repeat("─", 9)
	topLine := "┌" + hzLine + "┬" + hzLine + "┬" + hzLine + "┐"
	midLine := "├" + hzLine + "┼" + hzLine + "┼" + hzLine + "┤"
	bottomLine := "└" + hzLine + "┴" + hzLine + "┴" + hzLine + "┘"

	var b strings.Builder
	b.WriteString(topLine)
	b.WriteString("\n")
	for row := 0; row < 9; row++ {
		b.WriteString("│")
		for col := 0; col < 9; col++ {
			c := puzzleString[row*9+col]
			switch {
			case !isBlank(c):
				b.WriteString("(")
				b.WriteByte(c)
				b.WriteString(")")
			case len(solution) == 81:
				b.WriteString(" ")
				b.WriteString(au.Green(string(solution[row*9+col])).String())
				b.WriteString(" ")
			default:
				b.WriteString(" . ")
			}
			if col == 2 || col == 5 {
				b.WriteString("│")
			}
		}
		b.WriteString("│\n")
		if row == 2 || row == 5 {
			b.WriteString(midLine)
			b.WriteString("\n")
		}
	}
	b.WriteString(bottomLine)
	return b.String()
}
