package puzzle

/*

HTTP handlers for the solving API.  These are thin adapters: they
decode a request, call Solve or Validate, and encode the Result (or
the structured Error) as JSON.  Routing is the server's business.

*/

import (
	"net/http"

	"github.com/go-chi/render"
)

// A SolveRequest asks for a puzzle to be solved.  MaxIterations of
// 0 means DefaultMaxIterations.
type SolveRequest struct {
	Puzzle        string `json:"puzzle"`
	MaxIterations uint64 `json:"maxIterations,omitempty"`
}

// A ValidateRequest asks whether a candidate is a legal solution.
type ValidateRequest struct {
	Candidate string `json:"candidate"`
}

// A ValidateResponse reports legality.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// SolveHandler is a POST handler that solves a JSON-encoded
// SolveRequest.  The Result is sent as a 200 response; a malformed
// puzzle string is a 400 with the Error as the body.
func SolveHandler(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	result, err := Solve(req.Puzzle, req.MaxIterations)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// ValidateHandler is a POST handler that checks a JSON-encoded
// ValidateRequest.  Format and shape problems are 400s with the
// Error as the body; an invalid-but-well-formed candidate is a 200
// with valid=false.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}
	valid, err := Validate(req.Candidate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, ValidateResponse{Valid: valid})
}

// decodeError wraps a JSON decoding failure as an Error.
func decodeError(err error) Error {
	return Error{
		Scope:     RequestScope,
		Structure: AttributeStructure,
		Attribute: DecodeAttribute,
		Condition: GeneralCondition,
		Values:    ErrorData{err.Error()},
	}
}

// writeError sends the JSON form of an Error with an appropriate
// status: client problems are 400s, anything unexpected is a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := err.(Error)
	if !ok {
		e = Error{
			Scope:     InternalScope,
			Structure: ScopeStructure,
			Condition: GeneralCondition,
			Values:    ErrorData{err.Error()},
		}
	}
	e.Message = e.Error() // verbalize for the client
	status := http.StatusBadRequest
	if e.Scope == InternalScope {
		status = http.StatusInternalServerError
	}
	render.Status(r, status)
	render.JSON(w, r, e)
}
