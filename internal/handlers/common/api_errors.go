package common

import (
	"github.com/gin-gonic/gin"
)

// AbortWithError replies with the flat `{"error": message}` envelope used for
// all pre-upstream failures (wrong method, missing fields, missing
// credential, endpoint problems) and aborts the request.
func AbortWithError(c *gin.Context, status int, message string) {
	if message == "" {
		message = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
