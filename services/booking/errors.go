package booking

import "fmt"

// ValidationError reports an incomplete or inconsistent selection. It is
// surfaced inline to the user and never reaches the persistence layer.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NotFoundError reports a session that does not exist, has expired, or
// belongs to another user. All three read the same to the caller.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// StageError reports a transition attempted from the wrong session stage.
type StageError struct {
	Stage    string
	Expected string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("invalid stage %q, expected %q", e.Stage, e.Expected)
}
