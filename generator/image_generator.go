package generator

import (
	"context"
	"time"

	"google.golang.org/genai"

	"pin-genius/config"
	"pin-genius/models"
)

const (
	StrategyPrimary  = "gemini_inline"
	StrategyFallback = "imagen"

	pinAspectRatio = "3:4"
	defaultMIME    = "image/png"
)

// imageStrategy 는 순서대로 시도되는 이미지 생성 방식 하나다.
// 사용 가능한 이미지가 없으면 (nil, ErrNoImage) 를 반환한다.
type imageStrategy struct {
	name  string
	stage string
	model string
	run   func(ctx context.Context, client ModelAPI, call *callLog, prompt string) (*models.GeneratedImage, error)
}

// ImageGenerator 는 이미지 프롬프트로 핀 이미지를 만든다.
// 기본 전략(Gemini 멀티모달)이 실패하거나 빈 결과면 대체 전략(Imagen)을 한 번 시도한다.
type ImageGenerator struct {
	newClient     ClientFactory
	recorder      AILogRecorder
	model         string
	fallbackModel string
	timeout       time.Duration
}

func NewImageGenerator(newClient ClientFactory, recorder AILogRecorder, cfg config.GeminiConfig) *ImageGenerator {
	model := cfg.ImageModel
	if model == "" {
		model = config.DefaultImageModel
	}
	fallbackModel := cfg.FallbackImageModel
	if fallbackModel == "" {
		fallbackModel = config.DefaultFallbackImageModel
	}
	return &ImageGenerator{
		newClient:     newClient,
		recorder:      recorder,
		model:         model,
		fallbackModel: fallbackModel,
		timeout:       cfg.RequestTimeout,
	}
}

func (g *ImageGenerator) strategies() []imageStrategy {
	return []imageStrategy{
		{name: StrategyPrimary, stage: models.AILogStageImagePrimary, model: g.model, run: g.generateInline},
		{name: StrategyFallback, stage: models.AILogStageImageFallback, model: g.fallbackModel, run: g.generateImagen},
	}
}

// Generate 는 전략을 순서대로 시도해 첫 번째로 얻은 이미지를 반환한다.
// 업스트림 실패는 로그로만 남기고, 모든 전략이 실패하면 nil 을 반환한다.
func (g *ImageGenerator) Generate(ctx context.Context, prompt string) *models.GeneratedImage {
	client, err := g.newClient(ctx)
	if err != nil {
		config.Logger.Errorf("image generation skipped, client unavailable: %v", err)
		return nil
	}

	for _, s := range g.strategies() {
		img, err := g.attempt(ctx, client, s, prompt)
		if err != nil {
			config.Logger.Warnf("image strategy %s (model=%s) failed, attempting fallback: %v", s.name, s.model, err)
			continue
		}
		config.Logger.Infof("image generated by %s (model=%s, mime=%s, bytes=%d)", s.name, s.model, img.MIMEType, len(img.Data))
		return img
	}

	config.Logger.Error("all image generation strategies failed")
	return nil
}

func (g *ImageGenerator) attempt(ctx context.Context, client ModelAPI, s imageStrategy, prompt string) (img *models.GeneratedImage, err error) {
	call := startCallLog(ctx, s.stage, s.model, prompt)
	defer func() {
		summary := ""
		if img != nil {
			summary = img.MIMEType
		}
		call.finish(ctx, g.recorder, summary, err)
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	op := "generate image (" + s.name + ")"
	img, err = s.run(ctx, client, call, prompt)
	if err != nil {
		return nil, newError(KindUpstreamImage, op, err)
	}
	if img == nil || len(img.Data) == 0 {
		return nil, newError(KindUpstreamImage, op, ErrNoImage)
	}
	img.Strategy = s.name
	img.Model = s.model
	return img, nil
}

// generateInline 은 멀티모달 모델 응답의 첫 후보에서 인라인 이미지 파트를 찾는다.
func (g *ImageGenerator) generateInline(ctx context.Context, client ModelAPI, call *callLog, prompt string) (*models.GeneratedImage, error) {
	resp, err := client.GenerateContent(
		ctx,
		g.model,
		genai.Text(primaryImagePrompt(prompt)),
		&genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{AspectRatio: pinAspectRatio},
		},
	)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ErrNoImage
	}
	call.usage(resp.ModelVersion, resp.UsageMetadata)

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil, ErrNoImage
	}
	for _, part := range candidate.Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = defaultMIME
		}
		return &models.GeneratedImage{MIMEType: mime, Data: part.InlineData.Data}, nil
	}
	return nil, ErrNoImage
}

// generateImagen 은 이미지 전용 모델로 JPEG 한 장을 요청한다.
func (g *ImageGenerator) generateImagen(ctx context.Context, client ModelAPI, _ *callLog, prompt string) (*models.GeneratedImage, error) {
	resp, err := client.GenerateImages(
		ctx,
		g.fallbackModel,
		fallbackImagePrompt(prompt),
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    pinAspectRatio,
			OutputMIMEType: models.MIMETypeJPEG,
		},
	)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, ErrNoImage
	}
	generated := resp.GeneratedImages[0]
	if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		return nil, ErrNoImage
	}
	return &models.GeneratedImage{MIMEType: models.MIMETypeJPEG, Data: generated.Image.ImageBytes}, nil
}
