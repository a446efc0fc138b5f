package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/gg-motors/constant"
)

// FieldError names a single offending attribute of a request or entity.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	details []FieldError
	cause   error
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Details() []FieldError {
	return c.details
}

// Cause returns the underlying error that produced c, if any.
func (c CustomError) Cause() error {
	return c.cause
}

func (c CustomError) Unwrap() error {
	return c.cause
}

// WithDetails returns a copy of c carrying the given field errors.
func (c CustomError) WithDetails(details ...FieldError) CustomError {
	c.details = append(append([]FieldError(nil), c.details...), details...)
	return c
}

// WithCause returns a copy of c wrapping err.
func (c CustomError) WithCause(err error) CustomError {
	c.cause = err
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// As extracts the CustomError from err's chain.
func As(err error) (CustomError, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return CustomError{}, false
}

// Is reports whether err carries a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := As(err)
	return ok && ce.errType == errorType
}

// MergeFieldErrors concatenates the lists keeping the first error reported
// for each field.
func MergeFieldErrors(lists ...[]FieldError) []FieldError {
	var out []FieldError
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, fe := range list {
			if fe.Field != "" && seen[fe.Field] {
				continue
			}
			seen[fe.Field] = true
			out = append(out, fe)
		}
	}
	return out
}
