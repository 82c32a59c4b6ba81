package apperror

import (
	"context"
	"errors"
	"net/http"

	"go-leave/internal/shared/i18n"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// As is errors.As, re-exported so callers need a single import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// ToHTTP maps any error to its transport representation. Errors that are not
// AppErrors never leak their text.
func ToHTTP(err error) HTTPError {
	return ToLocalizedHTTP(context.Background(), err)
}

// ToLocalizedHTTP is ToHTTP with the message translated to the locale in ctx.
func ToLocalizedHTTP(ctx context.Context, err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}

	msg := appErr.Message
	if appErr.Key != "" {
		msg = i18n.T(ctx, appErr.Key, appErr.Message, appErr.Data)
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	return HTTPError{
		Status:  status,
		Code:    appErr.Code,
		Message: msg,
	}
}
