package leavebalanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Type de congé invalide",
		http.StatusBadRequest,
	).WithKey("leave_balance.invalid_type")

	ErrZeroChange = apperror.New(
		apperror.CodeInvalidInput,
		"La variation du solde ne peut pas être nulle",
		http.StatusBadRequest,
	).WithKey("leave_balance.zero_change")

	ErrInvalidChange = apperror.New(
		apperror.CodeInvalidInput,
		"La variation doit être un multiple de 0,1 jour",
		http.StatusBadRequest,
	).WithKey("leave_balance.invalid_change")

	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Le motif est requis",
		http.StatusBadRequest,
	).WithKey("leave_balance.reason_required")

	ErrReasonTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Le motif ne doit pas dépasser 500 caractères",
		http.StatusBadRequest,
	).WithKey("leave_balance.reason_too_long")

	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"Solde de congés insuffisant",
		http.StatusBadRequest,
	).WithKey("leave_balance.insufficient")
)
