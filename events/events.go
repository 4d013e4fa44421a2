package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PinGenerated EventType = "pin.generated"
)

const eventVersion = "1"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func NewBaseEvent(eventType EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Version:   eventVersion,
	}
}

// PinGeneratedEvent 핀 콘텐츠 생성 완료 이벤트.
// 이미지 바이트는 싣지 않고 어떤 전략으로 만들어졌는지만 남긴다.
type PinGeneratedEvent struct {
	BaseEvent
	GenerationID  string    `json:"generation_id"`
	Topic         string    `json:"topic"`
	Category      string    `json:"category"`
	Style         string    `json:"style"`
	Title         string    `json:"title"`
	Tags          []string  `json:"tags"`
	Hashtags      []string  `json:"hashtags"`
	HasImage      bool      `json:"has_image"`
	ImageStrategy string    `json:"image_strategy,omitempty"`
	ImageModel    string    `json:"image_model,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}
