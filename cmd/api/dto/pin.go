package dto

import (
	"time"

	"pin-genius/models"
	"pin-genius/pipeline"
)

// 이미지 상태 값
const (
	ImageStatusPending = "pending"
	ImageStatusReady   = "ready"
	ImageStatusFailed  = "failed"
)

// ImageFailedPlaceholder 는 이미지 없이 완료된 경우 화면에 보여주는 문구다.
const ImageFailedPlaceholder = "Image generation failed"

// PinRequestDTO 는 핀 생성 요청 바디다.
type PinRequestDTO struct {
	Topic    string `json:"topic" form:"topic" example:"Modern Living Room Ideas"`
	Category string `json:"category" form:"category" example:"Home Decor"`
	Style    string `json:"style" form:"style" example:"Modern & Clean"`
}

func (r PinRequestDTO) ToModel() models.GenerationRequest {
	return models.GenerationRequest{Topic: r.Topic, Category: r.Category, Style: r.Style}
}

type ImageDTO struct {
	MIMEType string `json:"mime_type" example:"image/png"`
	DataURI  string `json:"data_uri"`
	Strategy string `json:"strategy" example:"gemini_inline"`
	Model    string `json:"model" example:"gemini-2.5-flash-image"`
}

// PinResponseDTO 는 세션 스냅샷을 API 응답으로 표현한다.
type PinResponseDTO struct {
	GenerationID string                   `json:"generation_id,omitempty"`
	State        string                   `json:"state" example:"complete"`
	Request      PinRequestDTO            `json:"request"`
	LoadingText  bool                     `json:"loading_text"`
	LoadingImage bool                     `json:"loading_image"`
	CanSubmit    bool                     `json:"can_submit"`
	Content      *models.PinterestContent `json:"content"`
	Image        *ImageDTO                `json:"image"`
	ImageStatus  string                   `json:"image_status,omitempty" example:"ready"`
	Error        string                   `json:"error,omitempty"`
	StartedAt    *time.Time               `json:"started_at,omitempty"`
	FinishedAt   *time.Time               `json:"finished_at,omitempty"`
}

func NewPinResponseDTO(snap pipeline.Snapshot) PinResponseDTO {
	out := PinResponseDTO{
		GenerationID: snap.GenerationID,
		State:        string(snap.State),
		Request: PinRequestDTO{
			Topic:    snap.Request.Topic,
			Category: snap.Request.Category,
			Style:    snap.Request.Style,
		},
		LoadingText:  snap.LoadingText,
		LoadingImage: snap.LoadingImage,
		CanSubmit:    snap.CanSubmit(),
		Content:      snap.Content,
		ImageStatus:  ImageStatus(snap),
		Error:        snap.Error,
	}
	if snap.Image != nil {
		out.Image = &ImageDTO{
			MIMEType: snap.Image.MIMEType,
			DataURI:  snap.Image.DataURI(),
			Strategy: snap.Image.Strategy,
			Model:    snap.Image.Model,
		}
	}
	if !snap.StartedAt.IsZero() {
		started := snap.StartedAt
		out.StartedAt = &started
	}
	if !snap.FinishedAt.IsZero() {
		finished := snap.FinishedAt
		out.FinishedAt = &finished
	}
	return out
}

// ImageStatus 는 스냅샷의 이미지 단계 상태를 반환한다. 텍스트 단계 전에는 빈 문자열이다.
func ImageStatus(snap pipeline.Snapshot) string {
	switch {
	case snap.Image != nil:
		return ImageStatusReady
	case snap.ImageFailed(), snap.State == pipeline.StateFailed && snap.Content != nil:
		return ImageStatusFailed
	case snap.State == pipeline.StateGeneratingImage:
		return ImageStatusPending
	default:
		return ""
	}
}

// VocabulariesDTO 는 선택 가능한 카테고리/스타일 목록이다.
type VocabulariesDTO struct {
	Categories      []string `json:"categories"`
	Styles          []string `json:"styles"`
	DefaultCategory string   `json:"default_category" example:"Home Decor"`
	DefaultStyle    string   `json:"default_style" example:"Modern & Clean"`
}

// AILogDTO 는 한 번의 모델 호출 기록이다. 프롬프트/응답 본문은 포함하지 않는다.
type AILogDTO struct {
	Stage        string    `json:"stage" example:"text"`
	ModelName    string    `json:"model_name" example:"gemini-2.5-flash"`
	ModelVersion string    `json:"model_version,omitempty"`
	InputTokens  int64     `json:"input_tokens"`
	OutputTokens int64     `json:"output_tokens"`
	TotalTokens  int64     `json:"total_tokens"`
	DurationMs   int64     `json:"duration_ms"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

func NewAILogDTOs(logs []models.AILog) []AILogDTO {
	out := make([]AILogDTO, 0, len(logs))
	for _, l := range logs {
		item := AILogDTO{
			Stage:        l.Stage,
			ModelName:    l.ModelName,
			ModelVersion: l.ModelVersion,
			InputTokens:  l.InputTokens,
			OutputTokens: l.OutputTokens,
			TotalTokens:  l.TotalTokens,
			DurationMs:   l.DurationMs,
			Success:      l.Success,
			RequestedAt:  l.RequestedAt,
		}
		if l.ErrorMessage != nil {
			item.ErrorMessage = *l.ErrorMessage
		}
		out = append(out, item)
	}
	return out
}
