package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewJSONEvent 는 payload 를 JSON 으로 인코딩하여 Event 를 구성한다.
// id 가 빈 문자열이면 UUID 를 생성한다.
func NewJSONEvent(id, eventType string, payload any) (Event, error) {
	if id == "" {
		id = uuid.New().String()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:      id,
		Type:    eventType,
		Payload: b,
	}, nil
}
