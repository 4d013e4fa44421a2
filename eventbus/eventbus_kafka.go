package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"pin-genius/config"
)

// KafkaEventBus 는 confluent-kafka-go 라이브러리를 사용한 EventBus 구현체다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string
}

// NewKafkaEventBus 는 Kafka Producer 를 초기화한다.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("kafka Producer 생성 실패: %w", err)
	}

	// 전달 보고서와 클라이언트 오류를 로그로 남긴다.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					config.Logger.Errorf("메시지 전달 실패 %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				config.Logger.Errorf("Kafka 오류: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
	}, nil
}

// Close 는 Producer 를 안전하게 종료한다.
func (k *KafkaEventBus) Close() {
	if k.Producer != nil {
		// 5초 동안 남은 메시지를 모두 플러시한다.
		if remaining := k.Producer.Flush(5000); remaining > 0 {
			config.Logger.Warnf("플러시 후에도 %d개의 메시지가 남아 있습니다.", remaining)
		}
		k.Producer.Close()
		config.Logger.Info("Kafka Producer 종료.")
	}
}

// Publish 는 지정된 토픽에 이벤트를 발행하고 전달 결과를 기다린다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)

	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("예상치 못한 전달 이벤트: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("메시지 전달 실패: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
