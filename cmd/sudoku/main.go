// Command sudoku solves and validates 9x9 Sudoku puzzles, from the
// command line or as an HTTP service.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve and validate 9x9 Sudoku puzzles",
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		log.Fatal(err)
	}
}
