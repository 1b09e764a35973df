package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/requestid"
)

// RequestID makes sure every request runs with a correlation ID: a
// client-supplied X-Request-ID is kept, anything else gets a fresh
// one. The ID is stored on the request context and echoed back in the
// response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
