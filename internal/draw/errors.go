package draw

// DrawError is a custom error type for invalid generator input
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

const (
	ErrNilInput               DrawError = "input cannot be nil"
	ErrTooFewParticipants     DrawError = "at least 3 participants are required"
	ErrEmptyParticipantID     DrawError = "participant ID cannot be empty"
	ErrDuplicateParticipantID DrawError = "participant IDs must be unique"
	ErrUnknownDirection       DrawError = "unknown exclusion direction"
	ErrNilConfig              DrawError = "config cannot be nil"
	ErrNilShuffler            DrawError = "shuffler cannot be nil"
)
