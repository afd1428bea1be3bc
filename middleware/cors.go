package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// CORSMiddleware answers preflight requests and stamps CORS headers on
// every response. The allowed origin comes from CORS_ALLOWED_ORIGIN and
// defaults to any origin.
func CORSMiddleware() gin.HandlerFunc {
	origin := utils.GetEnvAsString("CORS_ALLOWED_ORIGIN", "*")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
