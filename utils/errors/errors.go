package errors

import "github.com/muhammadheryan/vastu-shakti/constant"

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	fields  []FieldError
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

// Fields returns the per-field violations attached to a validation error.
func (c CustomError) Fields() []FieldError {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError builds an ErrInvalidRequest carrying every violated field.
func SetValidationError(fields []FieldError) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}
