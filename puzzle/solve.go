package puzzle

/*

Solving pipeline

Start -> Propagate (fixed point) -> {Solved | NeedsSearch}
NeedsSearch -> BudgetCheck -> {Aborted | Search}
Search -> {Solved | Exhausted}

Solved is the only state from which an output string is producible.
A contradiction found during propagation short-circuits to the same
outcome as search exhaustion: the puzzle has no solution.

*/

import (
	"encoding/json"
	"strings"
)

// DefaultMaxIterations is the default combinatorial budget: if the
// candidate count at the propagation fixed point is at or above it,
// the solve aborts instead of enumerating.
const DefaultMaxIterations uint64 = 10_000_000

// An Outcome is a terminal state of the solving pipeline.
type Outcome int

// The terminal states.
const (
	OutcomeSolved Outcome = iota
	OutcomeAborted
	OutcomeExhausted
)

var outcomeNames = []string{"solved", "aborted", "exhausted"}

// Outcomes implement Stringer.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Outcomes serialize as their names.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON accepts the serialized name form.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range outcomeNames {
		if n == name {
			*o = Outcome(i)
			return nil
		}
	}
	return Error{
		Scope:     RequestScope,
		Structure: AttributeValueStructure,
		Attribute: DecodeAttribute,
		Condition: GeneralCondition,
		Values:    ErrorData{"unknown outcome " + name},
	}
}

// A Result is the explicit outcome of a solve call.  When the
// outcome is not Solved, Reason carries the abort or exhaustion
// Error; callers decide how to surface it.
type Result struct {
	Outcome      Outcome `json:"outcome"`
	Solution     string  `json:"solution,omitempty"`
	Combinations uint64  `json:"combinations,omitempty"` // candidate count at the fixed point
	Tried        uint64  `json:"tried,omitempty"`        // assignments validated during search
	Reason       *Error  `json:"reason,omitempty"`
}

// An Event reports solve progress to interactive callers.
type Event struct {
	Phase        string  `json:"phase"` // "propagated", "searching" or "done"
	Combinations uint64  `json:"combinations,omitempty"`
	Tried        uint64  `json:"tried,omitempty"`
	Result       *Result `json:"result,omitempty"`
}

// Progress phases.
const (
	PhasePropagated = "propagated"
	PhaseSearching  = "searching"
	PhaseDone       = "done"
)

// progressInterval is how many search trials pass between
// "searching" events.
const progressInterval = 1000

// Solve solves an 81-character puzzle.  The only Go error it
// returns is a format Error for a malformed input string; every
// solver outcome, including abort and exhaustion, is reported in
// the Result.  A maxIterations of 0 means DefaultMaxIterations.
func Solve(s string, maxIterations uint64) (Result, error) {
	return SolveWithProgress(s, maxIterations, nil)
}

// SolveWithProgress is Solve with a progress callback for
// interactive callers.  The callback may return false to stop a
// running search cooperatively, which yields the aborted outcome.
// A nil callback never stops anything.
func SolveWithProgress(s string, maxIterations uint64, progress func(Event) bool) (Result, error) {
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}
	g, err := FromString(s)
	if err != nil {
		return Result{}, err
	}

	// Phase 1: propagate to the fixed point.  A contradiction means
	// the puzzle is unsolvable; same outcome as exhaustion, without
	// paying for the search.
	if err := g.Propagate(); err != nil {
		reason := err.(Error)
		return Result{Outcome: OutcomeExhausted, Reason: &reason}, nil
	}
	combinations := g.CandidateCount()
	if progress != nil {
		progress(Event{Phase: PhasePropagated, Combinations: combinations})
	}
	if g.IsFullyKnown() {
		solution, err := g.DigitString()
		if err != nil {
			return Result{}, err
		}
		return Result{Outcome: OutcomeSolved, Solution: solution, Combinations: combinations}, nil
	}

	// Phase 2: budget gate.
	if combinations >= maxIterations {
		reason := budgetError(combinations, maxIterations)
		return Result{Outcome: OutcomeAborted, Combinations: combinations, Reason: &reason}, nil
	}

	// Phase 3: exhaustive search.
	var searchProgress func(uint64) bool
	if progress != nil {
		searchProgress = func(tried uint64) bool {
			if tried%progressInterval != 0 {
				return true
			}
			return progress(Event{Phase: PhaseSearching, Combinations: combinations, Tried: tried})
		}
	}
	out, err := g.search(searchProgress)
	if err != nil {
		return Result{}, err
	}
	result := Result{Combinations: combinations, Tried: out.tried}
	switch {
	case out.found:
		result.Outcome = OutcomeSolved
		result.Solution = digitString(out.solution)
	case out.canceled:
		result.Outcome = OutcomeAborted
		reason := canceledError()
		result.Reason = &reason
	default:
		result.Outcome = OutcomeExhausted
		reason := exhaustedError()
		result.Reason = &reason
	}
	return result, nil
}

// digitString renders 81 row-major digits as the textual format.
func digitString(digits []int) string {
	var sb strings.Builder
	sb.Grow(SquareCount)
	for _, v := range digits {
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}
