package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
)

// BodyLimit caps request bodies at limit bytes. Declared oversized bodies
// are rejected up front; chunked ones fail when the handler reads past the
// limit.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			httperr.Respond(c, httperr.TooLarge(httperr.MessageTooLarge))
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
