package trace

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"pin-genius/config"
)

// 컨텍스트에 저장되는 키 타입은 외부에서 직접 사용하지 못하게 unexported로 둔다.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info 는 하나의 HTTP 요청에 대한 트레이싱 정보를 담는다.
// - RequestID: 요청 단위로 고유
// - spanSeq: 동일 RequestID 내에서 업스트림(Gemini) 호출마다 1,2,3,... 순차 증가
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID 는 트레이싱에 사용할 랜덤 ID(하이픈 없는 UUID)를 생성한다.
func GenerateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// WithRequestAndSpan 은 Request ID 와 초기 Span 값(보통 0)을 컨텍스트에 저장한 새 컨텍스트를 반환한다.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext 는 컨텍스트에서 Request ID 를 조회한다.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID 는 컨텍스트에 저장된 현재 span 시퀀스 값을 문자열로 반환한다. (증가시키지 않는다.)
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID 는 동일한 RequestID 내에서 spanSeq 를 1 증가시키고 (requestID, spanID) 를 반환한다.
// 텍스트 호출 후 이미지 호출 두 번이 일어나면 spanID 는 1,2,3 이 된다.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}

// Fields 는 로그에 붙일 request_id/span_id 필드를 만든다.
func Fields(ctx context.Context) config.Fields {
	fields := config.Fields{"span_id": CurrentSpanID(ctx)}
	if id := RequestIDFromContext(ctx); id != "" {
		fields["request_id"] = id
	}
	return fields
}
