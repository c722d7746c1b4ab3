package puzzle

/*

Live solving over a websocket.  The client sends one SolveRequest
as a JSON text message; the server streams Events (propagation
result, periodic search progress, final Result) and closes.  The
progress callback doubles as the cooperative cancellation point:
when the client goes away, the next event write fails and the
search stops.

*/

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the solve API is origin-agnostic
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveSolveHandler upgrades the connection and streams solve
// progress.  Protocol errors are logged and close the connection;
// solver outcomes travel in the final "done" Event.
func LiveSolveHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Live solve upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("Live solve request decode failed: %v", err)
		return
	}

	alive := true
	progress := func(ev Event) bool {
		if err := conn.WriteJSON(ev); err != nil {
			alive = false
			return false
		}
		return true
	}
	result, err := SolveWithProgress(req.Puzzle, req.MaxIterations, progress)
	if !alive {
		return
	}
	if err != nil {
		e, ok := err.(Error)
		if !ok {
			e = Error{Scope: InternalScope, Structure: ScopeStructure,
				Condition: GeneralCondition, Values: ErrorData{err.Error()}}
		}
		e.Message = e.Error()
		result = Result{Outcome: OutcomeAborted, Reason: &e}
	}
	if err := conn.WriteJSON(Event{Phase: PhaseDone, Result: &result}); err != nil {
		return
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
