package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/squirtles/musicroad/mongo"
	"go.uber.org/zap"
)

func NewMongoDatabase(env *Env, logger *zap.Logger) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(ctx, env.DBURI)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("db", env.DBName))
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client, logger *zap.Logger) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("failed to close MongoDB connection", zap.Error(err))
		return
	}
	logger.Info("connection to MongoDB closed")
}
