package commands

import "fmt"

// UserError is a failure the player caused. Its message is shown to them
// as is; Cause keeps the game error behind it, if there was one.
type UserError struct {
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// explain turns a game error into the message the player sees.
func explain(cause error, format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
