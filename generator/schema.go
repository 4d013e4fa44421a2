package generator

import "google.golang.org/genai"

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func stringArraySchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

var blueprintSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"layout_structure":     stringSchema("Layout structure details (header, sections, etc)"),
		"fonts_typography":     stringSchema("Fonts, spacing, and hierarchy"),
		"color_theme":          stringSchema("Color themes suitable for Pinterest"),
		"text_elements":        stringSchema("Text elements required on the graphic"),
		"visual_style":         stringSchema("Recommended visual style"),
		"contrast_readability": stringSchema("Contrast and readability guidelines"),
		"aspect_ratio":         stringSchema("Must be '1000 x 1500'"),
	},
	Required: []string{
		"layout_structure", "fonts_typography", "color_theme", "text_elements",
		"visual_style", "contrast_readability", "aspect_ratio",
	},
}

var apiJSONSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       stringSchema(""),
		"description": stringSchema(""),
		"alt_text":    stringSchema(""),
		"hashtags":    stringArraySchema(""),
		"tags":        stringArraySchema(""),
		"board_id":    stringSchema("Always use {{USER_BOARD_ID}}"),
		"media_source": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"type": stringSchema("Always 'image'"),
				"images": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"png_download_url": stringSchema("Always {{PNG_URL}}"),
						"jpg_download_url": stringSchema("Always {{JPG_URL}}"),
					},
					Required: []string{"png_download_url", "jpg_download_url"},
				},
			},
			Required: []string{"type", "images"},
		},
	},
	Required: []string{"title", "description", "alt_text", "hashtags", "tags", "board_id", "media_source"},
}

// pinterestContentSchema 는 텍스트 모델에 요구하는 응답 JSON 스키마다.
var pinterestContentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":               stringSchema("SEO focused, max 90 chars"),
		"description":         stringSchema("250-400 chars, SEO optimized with CTA"),
		"alt_text":            stringSchema("Visual description only"),
		"tags":                stringArraySchema("Exactly 10 search engine tags"),
		"hashtags":            stringArraySchema("Exactly 10 mixed competition hashtags"),
		"blueprint":           blueprintSchema,
		"image_prompt":        stringSchema("Text-to-image prompt for 1000x1500 infographic. High detail."),
		"export_instructions": stringSchema("Exact export text required"),
		"api_json":            apiJSONSchema,
	},
	Required: []string{
		"title", "description", "alt_text", "tags", "hashtags", "blueprint",
		"image_prompt", "export_instructions", "api_json",
	},
}

// PinterestContentSchema 는 응답 스키마를 반환한다.
func PinterestContentSchema() *genai.Schema {
	return pinterestContentSchema
}
