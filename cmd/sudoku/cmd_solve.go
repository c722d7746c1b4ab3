package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gridkind/sudoku/puzzle"
	"github.com/spf13/cobra"
)

var (
	solveMaxIterations uint64
	solveQuiet         bool
)

var commandSolve = &cobra.Command{
	Use:   "solve <puzzle>",
	Short: "Solve a puzzle given as an 81-character string",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args[0]); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	commandSolve.Flags().Uint64Var(&solveMaxIterations, "max-iterations", puzzle.DefaultMaxIterations,
		"give up when the search space exceeds this many combinations")
	commandSolve.Flags().BoolVarP(&solveQuiet, "quiet", "q", false,
		"print only the 81 solution digits")
	mainCommand.AddCommand(commandSolve)
}

func runSolve(input string) error {
	result, err := puzzle.Solve(input, solveMaxIterations)
	if err != nil {
		return err
	}
	if result.Outcome != puzzle.OutcomeSolved {
		if result.Reason != nil {
			return *result.Reason
		}
		return fmt.Errorf("no solution found")
	}
	if solveQuiet {
		fmt.Println(result.Solution)
		return nil
	}
	fmt.Println(renderGrid(input, result.Solution, colorizer(os.Stdout)))
	if result.Tried > 0 {
		fmt.Printf("Solved after trying %d of %d candidate combinations.\n",
			result.Tried, result.Combinations)
	} else {
		fmt.Println("Solved by constraint propagation alone.")
	}
	return nil
}
