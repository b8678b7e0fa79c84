package validation

import "errors"

var (
	ErrRequired       = errors.New("required")
	ErrInvalidPhone   = errors.New("invalid phone")
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrOutOfRange     = errors.New("out of range")
)

const (
	MsgNameRequired      = "Name is required"
	MsgEmailRequired     = "Email is required"
	MsgInvalidPhone      = "Invalid phone format. Use +1234567890 or 123-456-7890."
	MsgDuplicateEmail    = "Email already exists"
	MsgPriceNotPositive  = "Price must be positive."
	MsgStockNegative     = "Stock cannot be negative."
	MsgPriceTooLarge     = "Price must be less than 10000000000."
	MsgTotalTooLarge     = "Order total must be less than 1000000000000."
	msgInvalidNumberTmpl = "%s must be a valid number"
)

// Error is a rule violation. Message is the caller-facing text; Kind is one
// of the sentinels above so callers can branch with errors.Is.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, Message: msg}
}

// Message returns the caller-facing text of a validation error, or "" when
// err is not one.
func Message(err error) string {
	var ve *Error
	if errors.As(err, &ve) && ve != nil {
		return ve.Message
	}
	return ""
}

func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
