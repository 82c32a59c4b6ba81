package user

import (
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/principal"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) GetMe(c *gin.Context) {
	requester := principal.New(c.GetString("user_id"))

	resp, err := h.svc.GetMe(c.Request.Context(), requester)
	if err != nil {
		httpErr := apperror.ToLocalizedHTTP(c.Request.Context(), err)
		h.logger.Warn("get me failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
