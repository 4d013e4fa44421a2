package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pin-genius/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Record 는 생성기에서 호출 로그를 남길 때 사용한다.
func (r *AILogRepository) Record(ctx context.Context, log models.AILog) error {
	_, err := r.Insert(ctx, log)
	return err
}

// FindByGenerationID 는 한 생성 시퀀스의 호출 로그를 요청 순서대로 반환한다.
func (r *AILogRepository) FindByGenerationID(ctx context.Context, generationID string) ([]models.AILog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"generation_id": generationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []models.AILog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
