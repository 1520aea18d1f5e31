package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
)

// AttachCorrelationID reads the caller's correlation id into the request ctx
// and echoes it back. Missing or malformed values become the zero uuid.
func AttachCorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ctxutil.ParseCorrelationID(c.GetHeader(ctxutil.CorrelationIDHeader))
		c.Request = c.Request.WithContext(ctxutil.WithCorrelationID(c.Request.Context(), id))
		c.Set("correlation_id", id.String())
		c.Writer.Header().Set(ctxutil.CorrelationIDHeader, id.String())
		c.Next()
	}
}
