package participant

import "errors"

var (
	// ErrParticipantNotFound is returned when a participant is not found
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadyClaimed is returned when a participant was claimed before
	ErrAlreadyClaimed = errors.New("participant already claimed")
)

var (
	errNilConfig    = errors.New("config cannot be nil")
	errEmptyEventID = errors.New("input and event ID cannot be empty")
	errEmptyIDs     = errors.New("input, event ID and participant ID cannot be empty")
)
