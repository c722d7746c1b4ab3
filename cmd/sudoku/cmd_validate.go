package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gridkind/sudoku/puzzle"
	"github.com/spf13/cobra"
)

var commandValidate = &cobra.Command{
	Use:   "validate <candidate>",
	Short: "Check a completed 81-digit grid for Sudoku validity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		valid, err := puzzle.Validate(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if !valid {
			fmt.Println("invalid")
			os.Exit(1)
		}
		fmt.Println("valid")
	},
}

func init() {
	mainCommand.AddCommand(commandValidate)
}
