package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"pin-genius/config"
	"pin-genius/models"
)

const testImagePrompt = "A modern living room infographic"

func newTestImageGenerator(fake *fakeModels, rec AILogRecorder) *ImageGenerator {
	return NewImageGenerator(fake.factory(), rec, config.GeminiConfig{})
}

func imagenResponse(data []byte) *genai.GenerateImagesResponse {
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{ImageBytes: data}}},
	}
}

func TestImageGeneratorPrimarySuccess(t *testing.T) {
	fake := &fakeModels{
		contentResp: func(string) (*genai.GenerateContentResponse, error) {
			return inlineImageResponse("image/png", []byte("png-bytes")), nil
		},
	}
	rec := &memoryRecorder{}

	img := newTestImageGenerator(fake, rec).Generate(context.Background(), testImagePrompt)
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, []byte("png-bytes"), img.Data)
	assert.Equal(t, StrategyPrimary, img.Strategy)
	assert.Equal(t, "data:image/png;base64,cG5nLWJ5dGVz", img.DataURI())

	require.Len(t, fake.contentCalls, 1)
	call := fake.contentCalls[0]
	assert.Equal(t, config.DefaultImageModel, call.model)
	assert.Equal(t, testImagePrompt+". High quality, vertical Pinterest pin style.", call.contents[0].Parts[0].Text)
	require.NotNil(t, call.config.ImageConfig)
	assert.Equal(t, "3:4", call.config.ImageConfig.AspectRatio)

	assert.Empty(t, fake.imagesCalls, "fallback must not run after a primary success")
	require.Len(t, rec.logs, 1)
	assert.Equal(t, models.AILogStageImagePrimary, rec.logs[0].Stage)
	assert.True(t, rec.logs[0].Success)
}

func TestImageGeneratorFallsBackOnce(t *testing.T) {
	testCases := []struct {
		name    string
		primary func(string) (*genai.GenerateContentResponse, error)
	}{
		{
			name: "primary throws",
			primary: func(string) (*genai.GenerateContentResponse, error) {
				return nil, errors.New("model not available")
			},
		},
		{
			name: "primary has no candidates",
			primary: func(string) (*genai.GenerateContentResponse, error) {
				return &genai.GenerateContentResponse{}, nil
			},
		},
		{
			name: "primary has text only",
			primary: func(string) (*genai.GenerateContentResponse, error) {
				return textResponse("I cannot draw that"), nil
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fake := &fakeModels{
				contentResp: testCase.primary,
				imagesResp: func(string) (*genai.GenerateImagesResponse, error) {
					return imagenResponse([]byte("jpeg-bytes")), nil
				},
			}
			rec := &memoryRecorder{}

			img := newTestImageGenerator(fake, rec).Generate(context.Background(), testImagePrompt)
			require.NotNil(t, img)
			assert.Equal(t, models.MIMETypeJPEG, img.MIMEType)
			assert.Equal(t, StrategyFallback, img.Strategy)
			assert.Len(t, fake.contentCalls, 1)
			require.Len(t, fake.imagesCalls, 1)

			call := fake.imagesCalls[0]
			assert.Equal(t, config.DefaultFallbackImageModel, call.model)
			assert.Equal(t, testImagePrompt+" Pinterest Pin, vertical, high quality, 1000x1500", call.prompt)
			assert.Equal(t, int32(1), call.config.NumberOfImages)
			assert.Equal(t, "3:4", call.config.AspectRatio)
			assert.Equal(t, models.MIMETypeJPEG, call.config.OutputMIMEType)

			require.Len(t, rec.logs, 2)
			assert.False(t, rec.logs[0].Success)
			assert.True(t, rec.logs[1].Success)
		})
	}
}

func TestImageGeneratorReturnsAbsentWhenBothFail(t *testing.T) {
	testCases := []struct {
		name     string
		fallback func(string) (*genai.GenerateImagesResponse, error)
	}{
		{
			name: "fallback throws",
			fallback: func(string) (*genai.GenerateImagesResponse, error) {
				return nil, errors.New("imagen quota exhausted")
			},
		},
		{
			name: "fallback returns no images",
			fallback: func(string) (*genai.GenerateImagesResponse, error) {
				return &genai.GenerateImagesResponse{}, nil
			},
		},
		{
			name: "fallback returns image without bytes",
			fallback: func(string) (*genai.GenerateImagesResponse, error) {
				return imagenResponse(nil), nil
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fake := &fakeModels{
				contentResp: func(string) (*genai.GenerateContentResponse, error) {
					return nil, errors.New("boom")
				},
				imagesResp: testCase.fallback,
			}

			img := newTestImageGenerator(fake, nil).Generate(context.Background(), testImagePrompt)
			assert.Nil(t, img)
			assert.Len(t, fake.contentCalls, 1)
			assert.Len(t, fake.imagesCalls, 1)
		})
	}
}

func TestImageGeneratorClientUnavailable(t *testing.T) {
	gen := NewImageGenerator(func(context.Context) (ModelAPI, error) {
		return nil, ErrMissingAPIKey
	}, nil, config.GeminiConfig{})

	assert.Nil(t, gen.Generate(context.Background(), testImagePrompt))
}

func TestImageGeneratorDefaultsMissingMIME(t *testing.T) {
	fake := &fakeModels{
		contentResp: func(string) (*genai.GenerateContentResponse, error) {
			return inlineImageResponse("", []byte{1, 2, 3}), nil
		},
	}

	img := newTestImageGenerator(fake, nil).Generate(context.Background(), testImagePrompt)
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MIMEType)
}

func TestImageAttemptErrorKind(t *testing.T) {
	quotaErr := errors.New("imagen quota exhausted")

	testCases := []struct {
		name      string
		primary   func(string) (*genai.GenerateContentResponse, error)
		wantErr   error
		wantInMsg string
	}{
		{
			name: "upstream error",
			primary: func(string) (*genai.GenerateContentResponse, error) {
				return nil, quotaErr
			},
			wantErr:   quotaErr,
			wantInMsg: StrategyPrimary,
		},
		{
			name: "text only response",
			primary: func(string) (*genai.GenerateContentResponse, error) {
				return textResponse("I cannot draw that"), nil
			},
			wantErr:   ErrNoImage,
			wantInMsg: StrategyPrimary,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fake := &fakeModels{contentResp: testCase.primary}
			rec := &memoryRecorder{}
			gen := newTestImageGenerator(fake, rec)

			img, err := gen.attempt(context.Background(), fake, gen.strategies()[0], testImagePrompt)
			assert.Nil(t, img)
			assert.True(t, IsKind(err, KindUpstreamImage))
			assert.False(t, IsKind(err, KindUpstreamText))
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Contains(t, err.Error(), testCase.wantInMsg)

			require.Len(t, rec.logs, 1)
			require.NotNil(t, rec.logs[0].ErrorMessage)
			assert.Contains(t, *rec.logs[0].ErrorMessage, testCase.wantErr.Error())
		})
	}
}
