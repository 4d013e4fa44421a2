package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"pin-genius/cmd/api/trace"
	"pin-genius/config"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace 는 모든 inbound HTTP 요청에 대해 Request ID 와 Span ID 를 보장하고,
// 이를 컨텍스트/헤더에 저장한 뒤 요청 완료 로그에 포함시킨다.
// 요청 바디는 로깅하지 않는다. (폼 입력은 파이프라인 로그에 남는다.)
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		// inbound 로그는 span_id=0, Gemini 호출은 1,2,3,... 로 증가
		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)

		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.CurrentSpanID(ctxWithTrace))

		c.Next()

		fields := trace.Fields(c.Request.Context())
		fields["method"] = req.Method
		fields["path"] = req.URL.Path
		fields["status"] = c.Writer.Status()
		fields["duration"] = time.Since(start).String()
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		config.InfoWithFields("completed request", fields)
	}
}
