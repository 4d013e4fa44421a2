package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// EnsureTopics 는 기본 토픽과 DLQ 토픽을 생성한다.
// 이미 존재하는 토픽에 대해서는 성공으로 간주한다.
func EnsureTopics(ctx context.Context, brokers string, topic Topic, basePartitions int) error {
	if topic.Base() == "" {
		return ErrEmptyTopic
	}
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
	})
	if err != nil {
		return fmt.Errorf("AdminClient 생성 실패: %w", err)
	}
	defer admin.Close()

	specs := topicSpecifications(topic, basePartitions)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	results, err := admin.CreateTopics(ctx, specs)
	if err != nil {
		return fmt.Errorf("토픽 생성 요청 실패: %w", err)
	}

	for _, r := range results {
		code := r.Error.Code()
		if code != kafka.ErrNoError && code != kafka.ErrTopicAlreadyExists {
			return fmt.Errorf("토픽 %s 생성 실패: %v", r.Topic, r.Error)
		}
	}

	return nil
}

func topicSpecifications(topic Topic, basePartitions int) []kafka.TopicSpecification {
	if basePartitions <= 0 {
		basePartitions = 1
	}
	return []kafka.TopicSpecification{
		{
			Topic:             topic.Base(),
			NumPartitions:     basePartitions,
			ReplicationFactor: 1,
		},
		// DLQ 토픽 (1 파티션)
		{
			Topic:             topic.DLQ(),
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}
}
