package models

import "strings"

// 외부 시스템이 나중에 치환하는 플레이스홀더 토큰. 이 서비스에서는 절대 실제 값으로 바꾸지 않는다.
const (
	PlaceholderBoardID = "{{USER_BOARD_ID}}"
	PlaceholderPNGURL  = "{{PNG_URL}}"
	PlaceholderJPGURL  = "{{JPG_URL}}"
)

// RequiredTagCount 는 tags, hashtags 각각이 가져야 하는 정확한 항목 수이다.
const RequiredTagCount = 10

// GenerationRequest 는 폼에서 입력받은 주제/카테고리/스타일 조합이다.
type GenerationRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Style    string `json:"style"`
}

// Normalized 는 Topic 의 앞뒤 공백을 제거한 사본을 반환한다.
func (r GenerationRequest) Normalized() GenerationRequest {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Category = strings.TrimSpace(r.Category)
	r.Style = strings.TrimSpace(r.Style)
	return r
}

// Blueprint 는 핀 그래픽 제작을 위한 디자인 가이드다.
type Blueprint struct {
	LayoutStructure     string `json:"layout_structure" bson:"layout_structure" validate:"required"`
	FontsTypography     string `json:"fonts_typography" bson:"fonts_typography" validate:"required"`
	ColorTheme          string `json:"color_theme" bson:"color_theme" validate:"required"`
	TextElements        string `json:"text_elements" bson:"text_elements" validate:"required"`
	VisualStyle         string `json:"visual_style" bson:"visual_style" validate:"required"`
	ContrastReadability string `json:"contrast_readability" bson:"contrast_readability" validate:"required"`
	AspectRatio         string `json:"aspect_ratio" bson:"aspect_ratio" validate:"required"`
}

type MediaImages struct {
	PNGDownloadURL string `json:"png_download_url" bson:"png_download_url"`
	JPGDownloadURL string `json:"jpg_download_url" bson:"jpg_download_url"`
}

type MediaSource struct {
	Type   string      `json:"type" bson:"type"`
	Images MediaImages `json:"images" bson:"images"`
}

// APIJSON 은 Pinterest API 요청 형태를 흉내 낸 페이로드다. URL/보드 ID 는 플레이스홀더로 남는다.
// 보드 ID 와 media_source 는 검증 뒤 플레이스홀더로 덮어쓰므로 태그를 두지 않는다.
type APIJSON struct {
	Title       string      `json:"title" bson:"title" validate:"required"`
	Description string      `json:"description" bson:"description" validate:"required"`
	AltText     string      `json:"alt_text" bson:"alt_text" validate:"required"`
	Hashtags    []string    `json:"hashtags" bson:"hashtags" validate:"min=1,dive,required"`
	Tags        []string    `json:"tags" bson:"tags" validate:"min=1,dive,required"`
	BoardID     string      `json:"board_id" bson:"board_id"`
	MediaSource MediaSource `json:"media_source" bson:"media_source"`
}

// PinterestContent 는 텍스트 생성 단계가 한 번의 응답으로 만들어 내는 결과물이다.
type PinterestContent struct {
	Title              string    `json:"title" bson:"title" validate:"required"`
	Description        string    `json:"description" bson:"description" validate:"required"`
	AltText            string    `json:"alt_text" bson:"alt_text" validate:"required"`
	Tags               []string  `json:"tags" bson:"tags" validate:"len=10,dive,required"`
	Hashtags           []string  `json:"hashtags" bson:"hashtags" validate:"len=10,dive,required"`
	Blueprint          Blueprint `json:"blueprint" bson:"blueprint"`
	ImagePrompt        string    `json:"image_prompt" bson:"image_prompt" validate:"required"`
	ExportInstructions string    `json:"export_instructions" bson:"export_instructions" validate:"required"`
	APIJSON            APIJSON   `json:"api_json" bson:"api_json" validate:"required"`
}

// TagsLine 은 복사용으로 tags 를 ", " 로 이어 붙인다.
func (c *PinterestContent) TagsLine() string {
	return strings.Join(c.Tags, ", ")
}

// HashtagsLine 은 복사용으로 hashtags 를 공백으로 이어 붙인다.
func (c *PinterestContent) HashtagsLine() string {
	return strings.Join(c.Hashtags, " ")
}
