package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EnhancedRecoveryMiddleware converts panics into 500 responses and
// records them in the error metrics, tagged with the request id set by
// the tracing middleware.
func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID, _ := c.Get("request_id")
				log.Printf("panic recovered: %v (request_id=%v path=%s)",
					r, requestID, c.Request.URL.Path)
				TrackError("panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
