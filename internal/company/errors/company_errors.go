package companyerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Entreprise introuvable",
		http.StatusNotFound,
	).WithKey("company.not_found")

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Identifiant d'entreprise invalide",
		http.StatusBadRequest,
	).WithKey("company.invalid_id")

	ErrCompanyNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Le nom de l'entreprise est requis",
		http.StatusBadRequest,
	).WithKey("company.name_required")
)
