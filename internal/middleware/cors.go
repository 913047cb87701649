package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORS provides Cross-Origin Resource Sharing support for the public API.
// Credentials stay disabled: the wildcard origin is only safe for
// bearer-token style calls.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "false")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, X-API-Key, accept, origin, Cache-Control, X-Requested-With, x-goog-api-key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
