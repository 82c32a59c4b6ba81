package usererrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Utilisateur introuvable",
		http.StatusNotFound,
	).WithKey("user.not_found")

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Identifiant utilisateur invalide",
		http.StatusBadRequest,
	).WithKey("user.invalid_id")

	ErrEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"L'adresse e-mail est requise",
		http.StatusBadRequest,
	).WithKey("user.email_required")
)
