package ctxutil

import "context"

type requestTraceKey struct{}

// RequestTrace identifies one inbound HTTP request across log lines.
type RequestTrace struct {
	TraceID   string
	RequestID string
}

func WithRequestTrace(ctx context.Context, rt *RequestTrace) context.Context {
	return context.WithValue(ctx, requestTraceKey{}, rt)
}

func RequestTraceFrom(ctx context.Context) *RequestTrace {
	if ctx == nil {
		return nil
	}
	if rt, ok := ctx.Value(requestTraceKey{}).(*RequestTrace); ok {
		return rt
	}
	return nil
}

// LogFields returns trace_id/request_id pairs for the logger, skipping blanks.
func LogFields(ctx context.Context) []interface{} {
	rt := RequestTraceFrom(ctx)
	if rt == nil {
		return nil
	}
	var out []interface{}
	if rt.TraceID != "" {
		out = append(out, "trace_id", rt.TraceID)
	}
	if rt.RequestID != "" {
		out = append(out, "request_id", rt.RequestID)
	}
	return out
}
