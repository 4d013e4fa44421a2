package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pin-genius/cmd/api/trace"
)

func TestClientPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := trace.WithRequestAndSpan(context.Background(), "req-abc", 0)
	client := New(Config{})

	for _, wantSpan := range []string{"1", "2"} {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL, strings.NewReader(`{"prompt":"hi"}`))
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "req-abc", gotRequestID)
		assert.Equal(t, wantSpan, gotSpanID)
		assert.Equal(t, `{"prompt":"hi"}`, gotBody, "body must be restored after logging")
	}
}

func TestClientReturnsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	resp, err := New(Config{}).Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRedactedURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "https://generativelanguage.googleapis.com/v1beta/models/x:generateContent?key=secret&alt=json", nil)
	got := redactedURL(req)
	assert.NotContains(t, got, "secret")
	assert.Contains(t, got, "alt=json")
}

func TestSnippetTruncates(t *testing.T) {
	assert.Len(t, snippet([]byte(strings.Repeat("a", 5000))), maxBodyLog)
	assert.Equal(t, "short", snippet([]byte("short")))
}
