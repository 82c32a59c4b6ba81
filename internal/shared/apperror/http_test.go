package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-leave/internal/shared/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	notFound := New(CodeNotFound, "Congé introuvable", http.StatusNotFound).WithKey("leave.not_found")

	t.Run("app error keeps code and status", func(t *testing.T) {
		got := ToHTTP(notFound)
		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, CodeNotFound, got.Code)
		assert.Equal(t, "Congé introuvable", got.Message)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		got := ToHTTP(fmt.Errorf("review: %w", notFound))
		assert.Equal(t, CodeNotFound, got.Code)
	})

	t.Run("unknown error never leaks its text", func(t *testing.T) {
		got := ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection refused")
	})
}

func TestToLocalizedHTTP(t *testing.T) {
	i18n.Init("fr")
	ctx := i18n.WithLocale(context.Background(), "en")

	got := ToLocalizedHTTP(ctx, New(CodeNotFound, "Congé introuvable", http.StatusNotFound).WithKey("leave.not_found"))
	assert.Equal(t, "Leave not found", got.Message)

	got = ToLocalizedHTTP(ctx, RequiredField("Reason"))
	assert.Equal(t, "Reason is required", got.Message)

	got = ToLocalizedHTTP(ctx, New(CodeConflict, "texte brut", http.StatusConflict).WithKey("no.such.key"))
	assert.Equal(t, "texte brut", got.Message)
}

func TestIsAndKind(t *testing.T) {
	sentinel := New(CodeConflict, "déjà membre", http.StatusConflict)
	keyed := sentinel.WithKey("membership.already_member")

	assert.ErrorIs(t, keyed, sentinel)
	assert.ErrorIs(t, Wrap(errors.New("23505"), CodeConflict, "déjà membre", http.StatusConflict), sentinel)
	assert.Equal(t, CodeConflict, Kind(fmt.Errorf("add: %w", keyed)))
	assert.Equal(t, CodeInternalError, Kind(errors.New("boom")))
	assert.Nil(t, Wrap(nil, CodeConflict, "x", http.StatusConflict))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Reason string `validate:"required"`
		Type   string `validate:"oneof=PAID RTT"`
	}
	v := validator.New()

	err := MapValidationError(v.Struct(payload{Type: "PAID"}))
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "validation.required", err.Key)
	assert.Equal(t, "Reason", err.Data["Field"])

	err = MapValidationError(v.Struct(payload{Reason: "x", Type: "NOPE"}))
	assert.Equal(t, "validation.invalid", err.Key)

	assert.Equal(t, ErrInvalidInput, MapValidationError(errors.New("EOF")))
}

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "Start Date", formatFieldName("start_date"))
	assert.Equal(t, "HalfDayPeriod", formatFieldName("halfDayPeriod"))
}
