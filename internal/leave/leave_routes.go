package leave

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the lifecycle. idempotency guards creation and review.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc, auth ...gin.HandlerFunc) {
	writeGuard := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if idempotency == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{idempotency, h}
	}

	own := r.Group("/memberships/:membershipId/leaves")
	own.Use(auth...)
	{
		own.GET("", handler.GetMembershipLeaves)
		own.POST("", writeGuard(handler.Create)...)
	}

	company := r.Group("/companies/:companyId/leaves")
	company.Use(auth...)
	{
		company.GET("", handler.GetCompanyLeaves)
		company.GET("/stats", handler.GetStats)
		company.GET("/calendar", handler.GetCalendar)
		company.GET("/:leaveId", handler.GetByID)
		company.PUT("/:leaveId", handler.Update)
		company.DELETE("/:leaveId", handler.Delete)
		company.POST("/:leaveId/review", writeGuard(handler.Review)...)
	}
}
