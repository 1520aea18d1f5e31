package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
)

const headerTraceID = "X-Trace-Id"

// AttachTraceContext records the active span's ids (or a caller supplied
// trace id) for logging.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		td := &ctxutil.TraceData{}
		spanCtx := trace.SpanContextFromContext(c.Request.Context())
		if spanCtx.HasTraceID() {
			td.TraceID = spanCtx.TraceID().String()
		}
		if spanCtx.HasSpanID() {
			td.SpanID = spanCtx.SpanID().String()
		}
		if td.TraceID == "" {
			td.TraceID = strings.TrimSpace(c.GetHeader(headerTraceID))
		}
		if td.TraceID == "" {
			td.TraceID = uuid.New().String()
		}
		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))
		c.Set("trace_id", td.TraceID)
		c.Writer.Header().Set(headerTraceID, td.TraceID)
		c.Next()
	}
}
