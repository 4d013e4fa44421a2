package generator

import (
	"context"
	"time"

	"google.golang.org/genai"

	"pin-genius/config"
	"pin-genius/models"
)

// AILogRecorder 는 AI 호출 로그를 저장한다. nil 이면 기록하지 않는다.
type AILogRecorder interface {
	Record(ctx context.Context, log models.AILog) error
}

type ctxKey string

const ctxKeyGenerationID ctxKey = "generation_id"

// WithGenerationID 는 한 번의 생성 시퀀스를 식별하는 ID 를 컨텍스트에 저장한다.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyGenerationID, id)
}

// GenerationIDFromContext 는 컨텍스트에서 생성 ID 를 조회한다.
func GenerationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyGenerationID).(string)
	return v
}

const maxLoggedResponse = 2000

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// callLog 는 호출 하나에 대한 AILog 를 채워 나간다.
type callLog struct {
	entry models.AILog
}

func startCallLog(ctx context.Context, stage, model, prompt string) *callLog {
	return &callLog{entry: models.AILog{
		GenerationID: GenerationIDFromContext(ctx),
		Stage:        stage,
		ModelName:    model,
		InputPrompt:  prompt,
		RequestedAt:  time.Now(),
	}}
}

func (c *callLog) usage(version string, meta *genai.GenerateContentResponseUsageMetadata) {
	c.entry.ModelVersion = version
	if meta == nil {
		return
	}
	c.entry.InputTokens = int64(meta.PromptTokenCount)
	c.entry.OutputTokens = int64(meta.CandidatesTokenCount)
	c.entry.TotalTokens = int64(meta.TotalTokenCount)
}

func (c *callLog) finish(ctx context.Context, rec AILogRecorder, response string, err error) {
	c.entry.CompletedAt = time.Now()
	c.entry.DurationMs = c.entry.CompletedAt.Sub(c.entry.RequestedAt).Milliseconds()
	c.entry.OutputResponse = truncate(response, maxLoggedResponse)
	c.entry.Success = err == nil
	if err != nil {
		msg := err.Error()
		c.entry.ErrorMessage = &msg
	}

	if rec == nil {
		return
	}
	// 로그 저장 실패는 생성 결과에 영향을 주지 않는다.
	if recErr := rec.Record(context.WithoutCancel(ctx), c.entry); recErr != nil {
		config.Logger.Warnf("failed to record ai log (stage=%s): %v", c.entry.Stage, recErr)
	}
}
