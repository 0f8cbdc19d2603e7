package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for santactl.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // No valid pairing exists
	ExitCommandError = 2 // Bad flags or an unreadable event file
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, ExitFailure when it has none.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// CLIResponse is the JSON envelope for every command.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError describes a failure in JSON output.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes in JSON output.
const (
	ErrCodeLoad      = "load_failed"
	ErrCodeNoPairing = "no_valid_pairing"
	ErrCodeInvalid   = "invalid_input"
)

// writeJSON writes an indented envelope.
func writeJSON(w io.Writer, resp CLIResponse) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

// fail reports err in the chosen format and returns it with its exit code.
func fail(opts *RootOptions, w io.Writer, code string, exitCode int, message string, err error) error {
	if opts.Format == "json" {
		text := message
		if err != nil {
			text = fmt.Sprintf("%s: %v", message, err)
		}
		if encErr := writeJSON(w, CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: text},
		}); encErr != nil {
			return encErr
		}
	}

	if err != nil {
		return WrapExitError(exitCode, message, err)
	}
	return NewExitError(exitCode, message)
}
