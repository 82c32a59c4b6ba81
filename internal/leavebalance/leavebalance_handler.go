package leavebalance

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/principal"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavebalance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToLocalizedHTTP(c.Request.Context(), err)
	h.logger.Warn("leave balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetBalances(c *gin.Context) {
	resp, err := h.service.GetBalances(c.Request.Context(), c.Param("membershipId"), principal.New(c.GetString("user_id")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApplyChange(c *gin.Context) {
	var req ApplyChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ApplyChange(
		c.Request.Context(),
		c.Param("companyId"),
		c.Param("membershipId"),
		req,
		principal.New(c.GetString("user_id")),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	resp, err := h.service.GetHistory(c.Request.Context(), c.Param("membershipId"), principal.New(c.GetString("user_id")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.ParsePage(c)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ExportHistory(c *gin.Context) {
	membershipID := c.Param("membershipId")

	pdf, err := h.service.ExportHistoryPDF(c.Request.Context(), membershipID, principal.New(c.GetString("user_id")))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="releve-conges-%s.pdf"`, membershipID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
