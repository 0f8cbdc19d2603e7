package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFestive is a cheerful holiday tone
	ToneFestive MessageTone = "festive"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// ErrorType categorizes failures shown to users
type ErrorType string

const (
	ErrorTypeEventNotFound       ErrorType = "event_not_found"
	ErrorTypeEventNotReady       ErrorType = "event_not_ready"
	ErrorTypeParticipantNotFound ErrorType = "participant_not_found"
	ErrorTypeAlreadyClaimed      ErrorType = "already_claimed"
	ErrorTypeInactive            ErrorType = "participant_inactive"
	ErrorTypePairingsHidden      ErrorType = "pairings_hidden"
	ErrorTypeNoValidPairing      ErrorType = "no_valid_pairing"
	ErrorTypeInvalidInput        ErrorType = "invalid_input"
	ErrorTypeInternal            ErrorType = "internal"
)

// GetRevealMessageInput contains parameters for getting a reveal message
type GetRevealMessageInput struct {
	// GiverName is the participant who just claimed
	GiverName string

	// ReceiverName is who they give a gift to
	ReceiverName string

	// Budget is shown as a reminder when set
	Budget string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRevealMessageOutput contains the result of getting a reveal message
type GetRevealMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetEventCreatedMessageInput is the input for GetEventCreatedMessage
type GetEventCreatedMessageInput struct {
	EventName        string
	ParticipantCount int
}

// GetEventCreatedMessageOutput is the output for GetEventCreatedMessage
type GetEventCreatedMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput is the input for GetErrorMessage
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Detail is appended for invalid input so users know what to fix
	Detail string
}

// GetErrorMessageOutput is the output for GetErrorMessage
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// Config contains configuration for the messaging service
type Config struct {
	// Seed makes message selection reproducible; zero seeds from the clock
	Seed int64
}
