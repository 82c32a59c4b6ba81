package middleware

import (
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Jeton d'authentification manquant",
		http.StatusUnauthorized,
	).WithKey("auth.token_missing")

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Jeton d'authentification invalide",
		http.StatusUnauthorized,
	).WithKey("auth.token_invalid")

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Jeton d'authentification expiré",
		http.StatusUnauthorized,
	).WithKey("auth.token_expired")

	ErrTooManyRequests = apperror.New(
		apperror.CodeTooManyRequests,
		"Trop de requêtes, réessayez plus tard",
		http.StatusTooManyRequests,
	).WithKey("common.too_many_requests")

	ErrRequestInProgress = apperror.New(
		apperror.CodeConflict,
		"Votre demande est déjà en cours de traitement",
		http.StatusConflict,
	).WithKey("common.request_in_progress")
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	httpErr := apperror.ToLocalizedHTTP(c.Request.Context(), err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
