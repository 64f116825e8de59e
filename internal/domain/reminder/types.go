package reminder

import "errors"

var (
	ErrParse         = errors.New("due time could not be resolved to a future moment")
	ErrEmptyText     = errors.New("reminder text cannot be empty")
	ErrTextTooLong   = errors.New("reminder text exceeds maximum length")
	ErrInvalidOwner  = errors.New("invalid owner id")
	ErrInvalidID     = errors.New("invalid reminder id")
	ErrDueAtRequired = errors.New("due time is required")
)
