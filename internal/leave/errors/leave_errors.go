package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Congé introuvable",
		http.StatusNotFound,
	).WithKey("leave.not_found")
	ErrNotLeaveOwner = apperror.New(
		apperror.CodeForbidden,
		"Vous ne pouvez demander un congé que pour vous-même",
		http.StatusForbidden,
	).WithKey("leave.not_owner")
	ErrSelfReview = apperror.New(
		apperror.CodeForbidden,
		"Vous ne pouvez pas revoir votre propre demande de congé",
		http.StatusForbidden,
	).WithKey("leave.self_review")
	ErrLeaveNotPending = apperror.New(
		apperror.CodeConflict,
		"Seuls les congés en attente peuvent être revus",
		http.StatusConflict,
	).WithKey("leave.not_pending")
	ErrLeaveNotEditable = apperror.New(
		apperror.CodeConflict,
		"Seuls les congés en attente peuvent être modifiés ou supprimés",
		http.StatusConflict,
	).WithKey("leave.not_editable")
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Un congé existe déjà sur cette période",
		http.StatusConflict,
	).WithKey("leave.overlap")
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Format de date invalide, attendu AAAA-MM-JJ",
		http.StatusBadRequest,
	).WithKey("leave.invalid_date")
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"La date de début doit précéder ou égaler la date de fin",
		http.StatusBadRequest,
	).WithKey("leave.invalid_range")
	ErrHalfDayMultiDay = apperror.New(
		apperror.CodeInvalidInput,
		"Une demi-journée ne peut porter que sur un seul jour",
		http.StatusBadRequest,
	).WithKey("leave.half_day_multi_day")
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidInput,
		"La période ne contient aucun jour ouvré",
		http.StatusBadRequest,
	).WithKey("leave.no_working_days")
	ErrInvalidReviewStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Le statut de revue doit être APPROVED ou REJECTED",
		http.StatusBadRequest,
	).WithKey("leave.invalid_review_status")
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Statut de congé invalide",
		http.StatusBadRequest,
	).WithKey("leave.invalid_status")
)
