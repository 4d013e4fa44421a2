package generator

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"

	"pin-genius/config"
)

// ModelAPI 는 genai.Models 중 이 서비스가 사용하는 호출만 모은 인터페이스다.
type ModelAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// ClientFactory 는 호출마다 새 ModelAPI 를 만든다.
// 클라이언트를 캐시하지 않으므로 API 키가 바뀌면 다음 호출부터 바로 반영된다.
type ClientFactory func(ctx context.Context) (ModelAPI, error)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// NewGenAIClientFactory 는 호출 시점의 API 키로 genai 클라이언트를 생성하는 팩토리를 반환한다.
// httpClient 가 nil 이면 genai 기본 클라이언트를 사용한다.
func NewGenAIClientFactory(httpClient *http.Client) ClientFactory {
	return func(ctx context.Context) (ModelAPI, error) {
		apiKey := config.GeminiAPIKey()
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return client.Models, nil
	}
}
