package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth ...gin.HandlerFunc) {
	me := r.Group("/me")
	me.Use(auth...)
	{
		me.GET("", handler.GetMe)
	}
}
