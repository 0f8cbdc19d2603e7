package event

// EventError is a custom error type for event-related errors
type EventError string

// Error implements the error interface
func (e EventError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound             EventError = "event not found"
	ErrEventNotReady             EventError = "event pairings are not ready yet"
	ErrParticipantNotFound       EventError = "participant not found"
	ErrParticipantInactive       EventError = "participant is not active"
	ErrAlreadyClaimed            EventError = "participant already claimed"
	ErrDrawNotAssigned           EventError = "draw not assigned"
	ErrPairingsHidden            EventError = "pairings are hidden while the organizer participates"
	ErrNameRequired              EventError = "event name is required"
	ErrTooFewParticipants        EventError = "at least 3 participants are required"
	ErrEmptyParticipantName      EventError = "participant names cannot be empty"
	ErrDuplicateParticipantName  EventError = "participant names must be unique"
	ErrInvalidExclusionDirection EventError = "exclusion direction must be a_to_b or both"
	ErrOrganizerNotParticipant   EventError = "organizer must be one of the participants"
	ErrNoValidPairing            EventError = "these exclusions make the event impossible"
	ErrPairingFailed             EventError = "failed to generate pairings"
	ErrNilConfig                 EventError = "config cannot be nil"
	ErrNilEventRepo              EventError = "event repository cannot be nil"
	ErrNilParticipantRepo        EventError = "participant repository cannot be nil"
	ErrNilExclusionRepo          EventError = "exclusion repository cannot be nil"
	ErrNilGenerator              EventError = "pairing generator cannot be nil"
	ErrNilClock                  EventError = "clock cannot be nil"
	ErrNilUUIDGenerator          EventError = "UUID generator cannot be nil"
)
