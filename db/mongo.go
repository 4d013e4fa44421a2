package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"pin-genius/config"
)

// ErrNotConfigured 는 mongo.uri 가 비어 있을 때 반환된다.
var ErrNotConfigured = errors.New("mongo uri is not configured")

const AILogCollection = "ai_logs"

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
	initErr    error
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context, cfg config.MongoConfig) error {
	clientOnce.Do(func() {
		if cfg.URI == "" {
			initErr = ErrNotConfigured
			return
		}
		dbName := cfg.Database
		if dbName == "" {
			dbName = config.DefaultMongoDatabase
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		config.Logger.Infof("MongoDB connected (database=%s) and indexes ensured", dbName)
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Close disconnects the global client if it was initialized.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	_, err := d.Collection(AILogCollection).Indexes().CreateMany(ctx, aiLogIndexes())
	return err
}

func aiLogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// 한 번의 생성 시퀀스에 속한 호출을 모아 보기 위한 인덱스
		{
			Keys:    bson.D{{Key: "generation_id", Value: 1}, {Key: "requested_at", Value: 1}},
			Options: options.Index().SetName("idx_generation_id"),
		},
		{
			Keys:    bson.D{{Key: "requested_at", Value: -1}},
			Options: options.Index().SetName("idx_requested_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "stage", Value: 1}, {Key: "success", Value: 1}},
			Options: options.Index().SetName("idx_stage_success"),
		},
	}
}
