package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents application error codes
type ErrorCode string

const (
	ErrCodeValidation         ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeRateLimit          ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// Generic field tags used in error envelopes.
const (
	FieldValidation = "validation"
	FieldID         = "id"
	FieldBody       = "body"
	FieldServer     = "server"
)

// FieldMessage is one entry of an error envelope.
type FieldMessage struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// Envelope is the JSON body returned for every failed request.
type Envelope struct {
	ErrorsMessages []FieldMessage `json:"errorsMessages"`
}

// AppError represents an application error with code and context
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
	Context    map[string]interface{}
	// Fields overrides the default single-entry envelope.
	Fields []FieldMessage
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithField sets the field tag of a single-message error.
func (e *AppError) WithField(field string) *AppError {
	e.Fields = []FieldMessage{{Message: e.Message, Field: field}}
	return e
}

// Envelope renders the error as a response body.
func (e *AppError) Envelope() Envelope {
	if len(e.Fields) > 0 {
		return Envelope{ErrorsMessages: e.Fields}
	}
	return Envelope{ErrorsMessages: []FieldMessage{{Message: e.Message, Field: FieldServer}}}
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Context:    make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with application error
func WrapError(err error, code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Cause:      err,
		Context:    make(map[string]interface{}),
	}
}

// NewValidationError turns an ordered list of validation messages into a
// single error; every message is tagged with the generic validation field.
func NewValidationError(messages []string) *AppError {
	err := NewAppError(ErrCodeValidation, "validation failed", http.StatusBadRequest)
	err.Fields = make([]FieldMessage, 0, len(messages))
	for _, msg := range messages {
		err.Fields = append(err.Fields, FieldMessage{Message: msg, Field: FieldValidation})
	}
	return err
}

// ValidationMessages returns the messages carried by a validation error.
func (e *AppError) ValidationMessages() []string {
	if e.Code != ErrCodeValidation {
		return nil
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// Common error constructors
func NewInvalidInputError(message, field string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message, http.StatusBadRequest).WithField(field)
}

func NewNotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewRateLimitError() *AppError {
	return NewAppError(ErrCodeRateLimit, "rate limit exceeded", http.StatusTooManyRequests)
}

func NewInternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func NewServiceUnavailableError(message string) *AppError {
	return NewAppError(ErrCodeServiceUnavailable, message, http.StatusServiceUnavailable)
}

// IsAppError checks if error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts AppError from error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsValidation reports whether err carries validation failures.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodeValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == ErrCodeNotFound
}
