package leavebalance

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the ledger. idempotency guards the only write.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc, auth ...gin.HandlerFunc) {
	reads := r.Group("/memberships/:membershipId/balances")
	reads.Use(auth...)
	{
		reads.GET("", handler.GetBalances)
		reads.GET("/history", handler.GetHistory)
		reads.GET("/history/export", handler.ExportHistory)
	}

	writes := r.Group("/companies/:companyId/memberships/:membershipId/balances")
	writes.Use(auth...)
	if idempotency != nil {
		writes.Use(idempotency)
	}
	{
		writes.POST("", handler.ApplyChange)
	}
}
