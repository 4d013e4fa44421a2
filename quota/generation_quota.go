package quota

import (
	"context"
	"errors"
	"sync"
	"time"

	"pin-genius/config"
)

// ErrQuotaExceeded 는 일일 생성 한도를 모두 사용했을 때 반환된다.
var ErrQuotaExceeded = errors.New("daily generation quota exceeded")

// GenerationQuotaLimiter 는 텍스트 생성 LLM 호출에 대한 분당/일일 한도를 관리한다.
// 인스턴스가 하나라는 전제를 두고 인메모리로 동작하며, 재시작되면 카운터가 초기화된다.
type GenerationQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewGenerationQuotaLimiterFromConfig 는 config.yaml 의 generation_quota 설정으로 limiter 를 만든다.
// 설정 값이 0 이하인 경우에는 해당 방향의 제한을 두지 않는다.
func NewGenerationQuotaLimiterFromConfig(cfg config.AppConfig) *GenerationQuotaLimiter {
	q := cfg.GenerationQuota

	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &GenerationQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve 는 생성 호출 전에 분당/일일 한도를 적용한다.
// - 일일 한도를 초과한 경우: ErrQuotaExceeded 를 반환하고 호출자는 LLM 호출을 하지 않아야 한다.
// - 컨텍스트가 취소되면 ctx.Err() 를 반환한다.
// nil limiter 는 제한 없음으로 동작한다.
func (l *GenerationQuotaLimiter) WaitAndReserve(ctx context.Context) error {
	if l == nil {
		return nil
	}
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return ErrQuotaExceeded
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return nil
		}

		// 락을 풀고 대기한 뒤 상태를 다시 평가한다.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Remaining 은 오늘 남은 호출 수를 반환한다. 일일 한도가 없으면 -1 이다.
func (l *GenerationQuotaLimiter) Remaining() int {
	if l == nil || l.dailyLimit <= 0 {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.dayKey != l.now().UTC().Format("2006-01-02") {
		return l.dailyLimit
	}
	return l.dailyLimit - l.usedToday
}
