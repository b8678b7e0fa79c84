package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/platform/ctxutil"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.RequestTrace
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.RequestTraceFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, " req-1 ")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil {
		t.Fatalf("request trace not stored in context")
	}
	if seen.RequestID != "req-1" || rec.Header().Get(headerRequestID) != "req-1" {
		t.Fatalf("request id not propagated: ctx=%q header=%q", seen.RequestID, rec.Header().Get(headerRequestID))
	}
	if seen.TraceID == "" || rec.Header().Get(headerTraceID) != seen.TraceID {
		t.Fatalf("trace id missing or mismatched: ctx=%q header=%q", seen.TraceID, rec.Header().Get(headerTraceID))
	}
}
