package mongo

import (
	"context"
	"time"

	"github.com/squirtles/musicroad/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CreateIndexes 启动时创建索引，失败只记录日志不阻断启动
func CreateIndexes(db Database, logger *zap.Logger) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := 0

	// Pick Collection
	pickCollection := db.Collection(domain.CollectionPick)
	// 范围扫描依赖 geo_hash 升序索引
	if !createIndex(ctx, logger, pickCollection, bson.D{{Key: "geo_hash", Value: 1}}, "geo_hash") {
		failed++
	}
	if !createIndex(ctx, logger, pickCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at") {
		failed++
	}
	if !createIndex(ctx, logger, pickCollection, bson.D{{Key: "created_by", Value: 1}}, "created_by") {
		failed++
	}

	return failed
}

func createIndex(
	ctx context.Context,
	logger *zap.Logger,
	collection Collection,
	keys bson.D,
	name string,
) bool {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn("create index failed", zap.String("index", name), zap.Error(err))
		return false
	}
	logger.Debug("index ready", zap.String("index", name))
	return true
}
