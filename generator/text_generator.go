package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"pin-genius/config"
	"pin-genius/models"
)

// TextGenerator 는 주제/카테고리/스타일로 핀 텍스트 콘텐츠를 생성한다.
type TextGenerator struct {
	newClient   ClientFactory
	recorder    AILogRecorder
	model       string
	temperature float32
	timeout     time.Duration
}

func NewTextGenerator(newClient ClientFactory, recorder AILogRecorder, cfg config.GeminiConfig) *TextGenerator {
	model := cfg.TextModel
	if model == "" {
		model = config.DefaultTextModel
	}
	temperature := config.DefaultTemperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return &TextGenerator{
		newClient:   newClient,
		recorder:    recorder,
		model:       model,
		temperature: temperature,
		timeout:     cfg.RequestTimeout,
	}
}

// Generate 는 텍스트 모델을 한 번 호출하고 응답을 PinterestContent 로 파싱/검증한다.
// 재시도는 하지 않으며, 실패는 모두 *GenerationError 로 반환된다.
func (g *TextGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.PinterestContent, error) {
	const op = "generate pinterest content"

	req = req.Normalized()
	if req.Topic == "" {
		return nil, newError(KindInput, op, fmt.Errorf("topic is empty"))
	}

	prompt := BuildTextPrompt(req)
	call := startCallLog(ctx, models.AILogStageText, g.model, prompt)

	content, raw, err := g.call(ctx, call, prompt)
	call.finish(ctx, g.recorder, raw, err)
	if err != nil {
		config.Logger.Errorf("gemini text generation error (model=%s): %v", g.model, err)
		return nil, newError(KindUpstreamText, op, err)
	}
	return content, nil
}

func (g *TextGenerator) call(ctx context.Context, call *callLog, prompt string) (*models.PinterestContent, string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return nil, "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	result, err := client.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType:  "application/json",
			ResponseSchema:    pinterestContentSchema,
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
			Temperature:       genai.Ptr(g.temperature),
		},
	)
	if err != nil {
		return nil, "", err
	}
	if result == nil {
		return nil, "", ErrEmptyResponse
	}
	call.usage(result.ModelVersion, result.UsageMetadata)

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, "", ErrEmptyResponse
	}

	var content models.PinterestContent
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return nil, text, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := ValidateContent(&content); err != nil {
		return nil, text, err
	}
	normalizePlaceholders(&content)

	return &content, text, nil
}
