package membershiperrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrMembershipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Membre introuvable",
		http.StatusNotFound,
	).WithKey("membership.not_found")

	ErrNotCompanyMember = apperror.New(
		apperror.CodeForbidden,
		"Vous n'êtes pas membre de cette entreprise",
		http.StatusForbidden,
	).WithKey("membership.not_member")

	ErrManagerRequired = apperror.New(
		apperror.CodeForbidden,
		"Action réservée aux managers",
		http.StatusForbidden,
	).WithKey("membership.manager_required")

	ErrAlreadyMember = apperror.New(
		apperror.CodeConflict,
		"Cet utilisateur est déjà membre de l'entreprise",
		http.StatusConflict,
	).WithKey("membership.already_member")

	ErrLastManager = apperror.New(
		apperror.CodeConflict,
		"L'entreprise doit conserver au moins un manager",
		http.StatusConflict,
	).WithKey("membership.last_manager")

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Utilisateur introuvable",
		http.StatusNotFound,
	).WithKey("user.not_found")

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Rôle invalide",
		http.StatusBadRequest,
	).WithKey("membership.invalid_role")
)
