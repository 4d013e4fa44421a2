package generator

import (
	"fmt"

	"pin-genius/models"
)

const SYSTEM_INSTRUCTION = "You are an expert Pinterest Marketing Strategist and Designer. Ensure strict adherence to tag counts."

const EXPORT_INSTRUCTIONS = `Export this design in:
1. PNG format (1000 x 1500 px, high quality, for Pinterest upload)
2. JPG format (1000 x 1500 px, compressed, for web use)`

const textPromptTemplate = `
You are a Pinterest Post Creation & Publishing Agent.
Topic: %q
Category: %q
Visual Style: %q

Follow these strict guidelines:
1. Title: SEO focus, max 90 chars, scroll-stopping.
2. Description: 250-400 chars, main keyword 2-3 times, 3-5 related keywords, value + CTA.
3. Alt Text: 1 clean sentence describing visual content.
4. Tags: EXACTLY 10 search engine tags. No more, no less.
5. Hashtags: EXACTLY 10 mixed hashtags (high, medium and low competition). No more, no less.
6. Blueprint: Detailed design guidelines for 1000x1500 Pinterest Pin.
7. Image Prompt: Single block for text-to-image model, 1000x1500, ultra-clear text, %s style.
8. Export Instructions: %q
9. API JSON: Structure with placeholders %s, %s, %s copied verbatim.
`

// BuildTextPrompt 는 텍스트 모델에 보낼 단일 지시문을 만든다.
func BuildTextPrompt(req models.GenerationRequest) string {
	return fmt.Sprintf(textPromptTemplate,
		req.Topic,
		req.Category,
		req.Style,
		req.Style,
		EXPORT_INSTRUCTIONS,
		models.PlaceholderBoardID,
		models.PlaceholderPNGURL,
		models.PlaceholderJPGURL,
	)
}

// 기본 전략은 세로형 핀 스타일 문구를, 대체 전략은 크기/방향 힌트를 프롬프트 뒤에 붙인다.
func primaryImagePrompt(prompt string) string {
	return prompt + ". High quality, vertical Pinterest pin style."
}

func fallbackImagePrompt(prompt string) string {
	return prompt + " Pinterest Pin, vertical, high quality, 1000x1500"
}
