package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failures.
var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrInvalidInquiry = errors.New("invalid partner inquiry")
	ErrInvalidContent = errors.New("invalid site content")
	ErrUnknownSection = errors.New("unknown content section")
)
