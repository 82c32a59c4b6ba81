package company

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth ...gin.HandlerFunc) {
	companies := r.Group("/companies")
	companies.Use(auth...)
	{
		// 1 company per 10s per user, burst 2
		companies.POST("", middleware.RateLimitByUser(0.1, 2), handler.Create)
		companies.GET("/:companyId", handler.GetByID)
	}
}
