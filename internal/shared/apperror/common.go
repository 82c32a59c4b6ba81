package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Ressource introuvable",
		http.StatusNotFound,
	).WithKey("common.not_found")

	ErrForbidden = New(
		CodeForbidden,
		"Vous n'avez pas la permission d'accéder à cette ressource",
		http.StatusForbidden,
	).WithKey("common.forbidden")

	ErrInternal = New(
		CodeInternalError,
		"Une erreur inattendue est survenue",
		http.StatusInternalServerError,
	).WithKey("common.internal")

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentification requise",
		http.StatusUnauthorized,
	).WithKey("common.unauthorized")

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Les données fournies sont invalides",
		http.StatusBadRequest,
	).WithKey("common.invalid_input")
)

// RequiredField builds a validation error for a missing field.
func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s est requis", field),
		http.StatusBadRequest,
	).WithKey("validation.required").WithData(map[string]any{"Field": field})
}

// InvalidField builds a validation error for a malformed field.
func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s est invalide", field),
		http.StatusBadRequest,
	).WithKey("validation.invalid").WithData(map[string]any{"Field": field})
}
