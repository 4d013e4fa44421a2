package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Topic 은 토픽의 기본 이름과 DLQ 토픽 이름을 관리한다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ 는 DLQ 토픽 이름을 반환한다 (예: my_topic.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// Event 는 Kafka 메시지의 페이로드로 사용되는 구조체다.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus 는 이벤트 발행의 추상화다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// ErrEmptyTopic 은 토픽 이름 없이 발행하려 할 때 반환된다.
var ErrEmptyTopic = errors.New("토픽 이름이 비어 있음")

// NoopEventBus 는 Kafka 가 설정되지 않았을 때 쓰이는 구현이다. 발행된 이벤트는 버려진다.
type NoopEventBus struct{}

func (NoopEventBus) Publish(_ context.Context, topic string, _ Event) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	return nil
}

func (NoopEventBus) Close() {}
