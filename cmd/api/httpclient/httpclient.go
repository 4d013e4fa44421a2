package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"pin-genius/cmd/api/trace"
	"pin-genius/config"
)

const maxBodyLog = 1024

// Config 는 Gemini 호출에 쓰는 HTTP 클라이언트 설정이다.
type Config struct {
	// Timeout 이 0 이면 제한 없음. 이미지 생성은 수십 초가 걸릴 수 있다.
	Timeout time.Duration
	// Transport 가 nil 이면 http.DefaultTransport 를 사용한다.
	Transport http.RoundTripper
}

// loggingRoundTripper 는 모든 아웃바운드 호출에 대해 공통 로깅과
// X-Request-Id/X-Span-Id 헤더 트레이싱을 수행한다.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	// 프롬프트 스니펫을 로깅하기 위해 바디를 한 번 읽고 복원한다.
	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			bodySnippet = snippet(bodyBytes)
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	fields := config.Fields{
		"method":     req.Method,
		"url":        redactedURL(req),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}

	resp, err := l.inner.RoundTrip(req)
	fields["duration"] = time.Since(start).String()
	if err != nil {
		fields["error"] = err.Error()
		config.ErrorWithFields("gemini request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	if resp.StatusCode >= http.StatusBadRequest {
		config.WarnWithFields("gemini request returned error status", fields)
		return resp, nil
	}
	config.DebugWithFields("gemini request success", fields)
	return resp, nil
}

func snippet(b []byte) string {
	if len(b) > maxBodyLog {
		return string(b[:maxBodyLog])
	}
	return string(b)
}

// redactedURL 은 쿼리 파라미터로 전달된 API 키가 로그에 남지 않도록 제거한다.
func redactedURL(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	u := *req.URL
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// New 는 주어진 설정으로 로깅이 포함된 http.Client 를 생성한다.
func New(cfg Config) *http.Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &loggingRoundTripper{inner: transport},
	}
}
