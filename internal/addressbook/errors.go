package addressbook

import "errors"

// ValidationError reports malformed user input (phone or birthday format).
// It is recoverable; callers render the message and keep going.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing contact or phone entry.
type NotFoundError struct {
	What string // the name or phone that was looked up
}

func (e *NotFoundError) Error() string {
	return "'" + e.What + "' not found"
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
