package planner

import "errors"

// Service-level errors surfaced to the HTTP layer.
var (
	ErrSessionNotFound    = errors.New("planner session not found or expired")
	ErrGenerationInFlight = errors.New("an itinerary request is already in progress")
	ErrNoItinerary        = errors.New("session has no itinerary to edit")
	ErrActivityNotFound   = errors.New("no activity at the given day/activity index")
)

// ErrorKind classifies a gateway failure.
type ErrorKind int

const (
	ErrKindProvider ErrorKind = iota
	ErrKindEmptyResponse
	ErrKindInvalidJSON
	ErrKindSchemaViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindProvider:
		return "provider error"
	case ErrKindEmptyResponse:
		return "empty response"
	case ErrKindInvalidJSON:
		return "invalid JSON"
	case ErrKindSchemaViolation:
		return "schema violation"
	default:
		return "unknown"
	}
}

// GatewayError represents a failure of the outbound AI call. The kind and
// detail are logged; users only ever see the fixed fallback message.
type GatewayError struct {
	Kind ErrorKind
	Op   string // operation that caused the error
	Err  error  // original error, may be nil
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	msg := "gateway error (" + e.Kind.String() + "): " + e.Op
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}
