package middleware

import (
	"go-leave/internal/shared/i18n"

	"github.com/gin-gonic/gin"
)

// Locale stores the Accept-Language header for message localisation.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		if lang := c.GetHeader("Accept-Language"); lang != "" {
			c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), lang))
		}
		c.Next()
	}
}
