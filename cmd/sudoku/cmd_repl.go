package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gridkind/sudoku/puzzle"
	"github.com/spf13/cobra"
)

var commandRepl = &cobra.Command{
	Use:   "repl",
	Short: "Solve puzzles interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listener(os.Stdout, os.Stdin); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	mainCommand.AddCommand(commandRepl)
}

/*

REPL listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// replState is the working state of one interactive session.
type replState struct {
	puzzle   string
	solution string
	budget   uint64
}

// listener reads lines and dispatches them to handlers
func listener(out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	// (see http://stackoverflow.com/questions/22744443/ for source)
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	state := &replState{budget: puzzle.DefaultMaxIterations}
	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "sudoku> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, arg)
				}
			}
			dispatchCommand(state, out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*replState, *os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"budget", "[combinations]", "get/set the search budget", budgetHandler},
		{"help", "", "list the available commands", helpHandler},
		{"load", "puzzleString", "load an 81-character puzzle", loadHandler},
		{"show", "", "show the loaded puzzle and solution", showHandler},
		{"solve", "[puzzleString]", "solve the loaded or given puzzle", replSolveHandler},
		{"validate", "[candidate]", "check a completed grid", replValidateHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(state *replState, w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			replErrorHandler(err, w, r)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(state, w, r)
	}
}

/*

request handlers

*/

func budgetHandler(state *replState, w *os.File, r *request) {
	if len(r.args) == 0 {
		fmt.Fprintf(w, "Search budget is %d combinations\n", state.budget)
		return
	}
	budget, err := strconv.ParseUint(r.args[0], 10, 64)
	if err != nil || budget == 0 {
		usageHandler(fmt.Sprintf("argument to %s must be a positive number", r.command), w, r)
		return
	}
	state.budget = budget
	fmt.Fprintf(w, "Search budget is %d combinations\n", state.budget)
}

func loadHandler(state *replState, w *os.File, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires one argument", r.command), w, r)
		return
	}
	if _, err := puzzle.FromString(r.args[0]); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	state.puzzle = r.args[0]
	state.solution = ""
	showHandler(state, w, r)
}

func showHandler(state *replState, w *os.File, r *request) {
	if state.puzzle == "" {
		fmt.Fprintf(w, "No puzzle loaded; use 'load' first.\n")
		return
	}
	fmt.Fprintln(w, renderGrid(state.puzzle, state.solution, colorizer(w)))
}

func replSolveHandler(state *replState, w *os.File, r *request) {
	input := state.puzzle
	if len(r.args) > 0 {
		input = r.args[0]
	}
	if input == "" {
		usageHandler(fmt.Sprintf("%s needs a loaded or given puzzle", r.command), w, r)
		return
	}
	result, err := puzzle.Solve(input, state.budget)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if result.Outcome != puzzle.OutcomeSolved {
		if result.Reason != nil {
			fmt.Fprintf(w, "Not solved: %v\n", *result.Reason)
		} else {
			fmt.Fprintf(w, "Not solved (%v).\n", result.Outcome)
		}
		return
	}
	state.puzzle = input
	state.solution = result.Solution
	fmt.Fprintln(w, renderGrid(state.puzzle, state.solution, colorizer(w)))
	if result.Tried > 0 {
		fmt.Fprintf(w, "Solved after trying %d of %d candidate combinations.\n",
			result.Tried, result.Combinations)
	} else {
		fmt.Fprintf(w, "Solved by constraint propagation alone.\n")
	}
}

func replValidateHandler(state *replState, w *os.File, r *request) {
	candidate := state.solution
	if len(r.args) > 0 {
		candidate = r.args[0]
	}
	if candidate == "" {
		usageHandler(fmt.Sprintf("%s needs a solution or given candidate", r.command), w, r)
		return
	}
	valid, err := puzzle.Validate(candidate)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	if valid {
		fmt.Fprintf(w, "The solution is valid.\n")
	} else {
		fmt.Fprintf(w, "The solution is NOT valid.\n")
	}
}

func helpHandler(state *replState, w *os.File, r *request) {
	fmt.Fprintf(w, "Commands:\n")
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-14s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %8s %-14s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func replErrorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("REPL error executing %q: %v\n", r.inline, err)
}
