package apperror

import "fmt"

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-facing message, French by default
	HTTPStatus int    // HTTP status code
	Key        string // i18n message id, optional
	Data       map[string]any
	Err        error // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by code and message so that wrapped copies of a
// sentinel still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithKey returns a copy of e carrying the i18n message id.
func (e *AppError) WithKey(key string) *AppError {
	cp := *e
	cp.Key = key
	return &cp
}

// WithData returns a copy of e carrying template data for localisation.
func (e *AppError) WithData(data map[string]any) *AppError {
	cp := *e
	cp.Data = data
	return &cp
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Kind returns the code of err if it is an AppError, CodeInternalError otherwise.
func Kind(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}
