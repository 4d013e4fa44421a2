package pipeline

import (
	"context"
	"fmt"
	"time"

	"pin-genius/eventbus"
	"pin-genius/events"
)

const eventSource = "pin-genius-api"

// EventPublisher 는 완료된 생성 결과를 pin.generated 이벤트로 발행한다.
type EventPublisher struct {
	bus   eventbus.EventBus
	topic eventbus.Topic
}

func NewEventPublisher(bus eventbus.EventBus, topic eventbus.Topic) *EventPublisher {
	return &EventPublisher{bus: bus, topic: topic}
}

func (p *EventPublisher) PublishPinGenerated(ctx context.Context, snap Snapshot) error {
	if snap.Content == nil {
		return fmt.Errorf("generation %s has no content to publish", snap.GenerationID)
	}

	evt := NewPinGeneratedEvent(snap)
	msg, err := eventbus.NewJSONEvent(evt.ID, string(evt.Type), evt)
	if err != nil {
		return err
	}
	return p.bus.Publish(ctx, p.topic.Base(), msg)
}

// NewPinGeneratedEvent 는 스냅샷에서 이벤트 페이로드를 만든다.
func NewPinGeneratedEvent(snap Snapshot) events.PinGeneratedEvent {
	evt := events.PinGeneratedEvent{
		BaseEvent:    events.NewBaseEvent(events.PinGenerated, eventSource),
		GenerationID: snap.GenerationID,
		Topic:        snap.Request.Topic,
		Category:     snap.Request.Category,
		Style:        snap.Request.Style,
		CompletedAt:  snap.FinishedAt,
	}
	if evt.CompletedAt.IsZero() {
		evt.CompletedAt = time.Now().UTC()
	}
	if snap.Content != nil {
		evt.Title = snap.Content.Title
		evt.Tags = snap.Content.Tags
		evt.Hashtags = snap.Content.Hashtags
	}
	if snap.Image != nil {
		evt.HasImage = true
		evt.ImageStrategy = snap.Image.Strategy
		evt.ImageModel = snap.Image.Model
	}
	return evt
}
