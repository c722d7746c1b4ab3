package puzzle

import (
	"errors"
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle or a requested
// operation.  It can produce an error message in English, but its
// main function is to support structured error handling by clients:
// it tells the caller "this thing failed to meet this condition",
// with supplemental details about the thing and the condition.  All
// fields are JSON-serializable so Errors can be returned to web
// clients as-is.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is referring
// to: a client-supplied argument, a square of the grid, a constraint
// group, the search, or an internal logic failure.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	SquareScope
	GroupScope
	SearchScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the overall
// Scope, an Attribute of the Scope, or the value of an Attribute of
// the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongLengthCondition
	BadCharacterCondition
	NotOneDigitPerCellCondition
	NoPossibleValuesCondition
	NotFullyKnownCondition
	TooManyCombinationsCondition
	SearchExhaustedCondition
	SearchCanceledCondition
	TooLargeCondition
	TooSmallCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	PuzzleAttribute
	CandidateAttribute
	LengthAttribute
	CharacterAttribute
	IndexAttribute
	ValueAttribute
	CombinationsAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well as
// the predicate itself (such as the limit that was exceeded).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will produce
// an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case SquareScope:
		es = fmt.Sprintf("Problem in square %v: ", nextVal())
	case GroupScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case SearchScope:
		es = "Search: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case PuzzleAttribute:
			es += "Puzzle"
		case CandidateAttribute:
			es += "Candidate"
		case LengthAttribute:
			es += "Length"
		case CharacterAttribute:
			es += "Character"
		case IndexAttribute:
			es += "Index"
		case ValueAttribute:
			es += "Value"
		case CombinationsAttribute:
			es += "Combination count"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongLengthCondition:
		es += fmt.Sprintf("Must be exactly %v characters", nextVal())
	case BadCharacterCondition:
		es += "Must be a digit or '.'"
	case NotOneDigitPerCellCondition:
		es += fmt.Sprintf("Cell must hold exactly one digit, has %v", nextVal())
	case NoPossibleValuesCondition:
		es += "No remaining possible values"
	case NotFullyKnownCondition:
		es += "Grid has undetermined squares"
	case TooManyCombinationsCondition:
		es += fmt.Sprintf("Must be below the iteration budget (%v)", nextVal())
	case SearchExhaustedCondition:
		es += "No valid completion exists"
	case SearchCanceledCondition:
		es += "Canceled by caller"
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// IsFormatError reports whether err is an Error describing a
// malformed 81-character puzzle string.
func IsFormatError(err error) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Scope == RequestScope &&
		(e.Condition == WrongLengthCondition || e.Condition == BadCharacterCondition)
}

// IsShapeError reports whether err is an Error describing a
// candidate structure that violates the one-digit-per-cell
// precondition.
func IsShapeError(err error) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Condition == NotOneDigitPerCellCondition
}

/*

Error constructors

*/

// lengthError describes an input string of the wrong length.
func lengthError(attr ErrorAttribute, got int) Error {
	return Error{
		Scope:     RequestScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: WrongLengthCondition,
		Values:    ErrorData{got, SquareCount},
	}
}

// characterError describes a disallowed character at a given
// position of an input string.
func characterError(attr ErrorAttribute, pos int, c byte) Error {
	return Error{
		Scope:     RequestScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: BadCharacterCondition,
		Values:    ErrorData{string(c), pos},
	}
}

// shapeError describes a cell of an indicator cube that doesn't
// hold exactly one digit.
func shapeError(row, col, count int) Error {
	return Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: CandidateAttribute,
		Condition: NotOneDigitPerCellCondition,
		Values:    ErrorData{fmt.Sprintf("r%dc%d", row+1, col+1), count},
	}
}

// contradictionError describes a square whose candidate set was
// emptied by an elimination, which makes the puzzle unsolvable.
func contradictionError(index, removed int) Error {
	return Error{
		Scope:     SquareScope,
		Structure: AttributeValueStructure,
		Attribute: ValueAttribute,
		Condition: NoPossibleValuesCondition,
		Values:    ErrorData{index, removed},
	}
}

// budgetError describes a combination count at or above the
// configured iteration budget.
func budgetError(combinations, budget uint64) Error {
	return Error{
		Scope:     SearchScope,
		Structure: AttributeValueStructure,
		Attribute: CombinationsAttribute,
		Condition: TooManyCombinationsCondition,
		Values:    ErrorData{combinations, budget},
	}
}

// exhaustedError reports a search that enumerated every assignment
// without finding a valid one.
func exhaustedError() Error {
	return Error{
		Scope:     SearchScope,
		Structure: ScopeStructure,
		Condition: SearchExhaustedCondition,
	}
}

// canceledError reports a search stopped by the caller's progress
// callback.
func canceledError() Error {
	return Error{
		Scope:     SearchScope,
		Structure: ScopeStructure,
		Condition: SearchCanceledCondition,
	}
}
