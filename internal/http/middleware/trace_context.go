package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/crm-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
)

// AttachTraceContext gives every request a request id and a trace id, echoes
// both as response headers and stores them for the request logger. An active
// otel span wins over a client supplied trace id.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span := trace.SpanFromContext(ctx)

		rt := &ctxutil.RequestTrace{
			RequestID: orNewID(c.GetHeader(headerRequestID)),
		}
		if sc := span.SpanContext(); sc.HasTraceID() {
			rt.TraceID = sc.TraceID().String()
		} else {
			rt.TraceID = orNewID(c.GetHeader(headerTraceID))
		}
		span.SetAttributes(attribute.String("crm.request_id", rt.RequestID))

		c.Request = c.Request.WithContext(ctxutil.WithRequestTrace(ctx, rt))
		c.Header(headerTraceID, rt.TraceID)
		c.Header(headerRequestID, rt.RequestID)
		c.Next()
	}
}

func orNewID(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return uuid.New().String()
}
