package usecases

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrPermissionDenied   = errors.New("you do not have permission to modify this resource")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ConflictError reports a duplicate unique field. The message is safe to
// return to the client.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
