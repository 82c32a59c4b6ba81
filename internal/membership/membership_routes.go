package membership

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth ...gin.HandlerFunc) {
	companies := r.Group("/companies/:companyId/memberships")
	companies.Use(auth...)
	{
		companies.GET("", handler.List)
		companies.POST("", handler.Add)
		companies.PATCH("/:membershipId", handler.UpdateRole)
		companies.DELETE("/:membershipId", handler.Delete)
	}

	mine := r.Group("/me/memberships")
	mine.Use(auth...)
	{
		mine.GET("", handler.ListMine)
	}
}
