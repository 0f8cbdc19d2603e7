package event

import "errors"

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

var (
	errNilConfig = errors.New("config cannot be nil")
	errNilInput  = errors.New("input and event cannot be nil")
)
