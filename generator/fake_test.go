package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"google.golang.org/genai"

	"pin-genius/models"
)

type contentCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type imagesCall struct {
	model  string
	prompt string
	config *genai.GenerateImagesConfig
}

// fakeModels 는 호출을 기록하고 미리 정해 둔 응답을 돌려주는 ModelAPI 구현이다.
type fakeModels struct {
	mu sync.Mutex

	contentResp func(model string) (*genai.GenerateContentResponse, error)
	imagesResp  func(model string) (*genai.GenerateImagesResponse, error)

	contentCalls []contentCall
	imagesCalls  []imagesCall
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.contentCalls = append(f.contentCalls, contentCall{model: model, contents: contents, config: cfg})
	f.mu.Unlock()
	if f.contentResp == nil {
		return nil, fmt.Errorf("unexpected GenerateContent call")
	}
	return f.contentResp(model)
}

func (f *fakeModels) GenerateImages(_ context.Context, model string, prompt string, cfg *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	f.mu.Lock()
	f.imagesCalls = append(f.imagesCalls, imagesCall{model: model, prompt: prompt, config: cfg})
	f.mu.Unlock()
	if f.imagesResp == nil {
		return nil, fmt.Errorf("unexpected GenerateImages call")
	}
	return f.imagesResp(model)
}

func (f *fakeModels) factory() ClientFactory {
	return func(context.Context) (ModelAPI, error) { return f, nil }
}

type memoryRecorder struct {
	mu   sync.Mutex
	logs []models.AILog
}

func (r *memoryRecorder) Record(_ context.Context, log models.AILog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		ModelVersion: "test-version",
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 34,
			TotalTokenCount:      46,
		},
	}
}

func inlineImageResponse(mime string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{
				{Text: "here is your pin"},
				{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
			}},
		}},
	}
}

func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func sampleContent(tags, hashtags int) models.PinterestContent {
	return models.PinterestContent{
		Title:       "Modern Living Room Ideas That Feel Fresh",
		Description: "Discover modern living room ideas with clean lines and warm textures. Save this pin!",
		AltText:     "A bright modern living room with a grey sofa and wooden coffee table.",
		Tags:        numbered("tag", tags),
		Hashtags:    numbered("#hashtag", hashtags),
		Blueprint: models.Blueprint{
			LayoutStructure:     "Header, hero image, three tips",
			FontsTypography:     "Bold sans serif headline",
			ColorTheme:          "Warm neutrals",
			TextElements:        "Title and CTA",
			VisualStyle:         "Modern & Clean",
			ContrastReadability: "Dark text on light overlay",
			AspectRatio:         "1000 x 1500",
		},
		ImagePrompt:        "A modern living room infographic",
		ExportInstructions: EXPORT_INSTRUCTIONS,
		APIJSON: models.APIJSON{
			Title:       "Modern Living Room Ideas That Feel Fresh",
			Description: "Discover modern living room ideas with clean lines and warm textures. Save this pin!",
			AltText:     "A bright modern living room with a grey sofa and wooden coffee table.",
			Hashtags:    numbered("#hashtag", hashtags),
			Tags:        numbered("tag", tags),
			BoardID:     models.PlaceholderBoardID,
			MediaSource: models.MediaSource{
				Type: "image",
				Images: models.MediaImages{
					PNGDownloadURL: models.PlaceholderPNGURL,
					JPGDownloadURL: models.PlaceholderJPGURL,
				},
			},
		},
	}
}

func sampleContentJSON(t *testing.T, tags, hashtags int) string {
	t.Helper()
	b, err := json.Marshal(sampleContent(tags, hashtags))
	if err != nil {
		t.Fatalf("marshal sample content: %v", err)
	}
	return string(b)
}

// sampleContentJSONWithout 은 정상 응답에서 지정한 최상위 키를 제거한 JSON 을 만든다.
func sampleContentJSONWithout(t *testing.T, keys ...string) string {
	t.Helper()
	var raw map[string]any
	if err := json.Unmarshal([]byte(sampleContentJSON(t, 10, 10)), &raw); err != nil {
		t.Fatalf("unmarshal sample content: %v", err)
	}
	for _, key := range keys {
		delete(raw, key)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal sample content: %v", err)
	}
	return string(b)
}

func jsonString(v any) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}
