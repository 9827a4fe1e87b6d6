package repository_pick

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/squirtles/musicroad/domain/domain_pick"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const pickCacheKeyPrefix = "musicroad:pick:"

// cachedPickRepository 按ID读取走 Redis 缓存，范围查询不缓存
type cachedPickRepository struct {
	domain_pick.PickRepository
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedPickRepository(
	next domain_pick.PickRepository,
	rdb redis.Cmdable,
	ttl time.Duration,
	logger *zap.Logger,
) domain_pick.PickRepository {
	return &cachedPickRepository{
		PickRepository: next,
		rdb:            rdb,
		ttl:            ttl,
		logger:         logger.Named("pick_cache"),
	}
}

func pickCacheKey(id primitive.ObjectID) string {
	return pickCacheKeyPrefix + id.Hex()
}

func (r *cachedPickRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_pick.PickDocument, error) {
	key := pickCacheKey(id)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var doc domain_pick.PickDocument
		if err := bson.Unmarshal(raw, &doc); err == nil {
			return &doc, nil
		}
		r.logger.Warn("discard undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	doc, err := r.PickRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := bson.Marshal(doc); err == nil {
		if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return doc, nil
}

func (r *cachedPickRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.PickRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *cachedPickRepository) IncrementFavorite(ctx context.Context, id primitive.ObjectID, delta int) (*domain_pick.PickDocument, error) {
	doc, err := r.PickRepository.IncrementFavorite(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, id)
	return doc, nil
}

func (r *cachedPickRepository) evict(ctx context.Context, id primitive.ObjectID) {
	if err := r.rdb.Del(ctx, pickCacheKey(id)).Err(); err != nil {
		r.logger.Warn("cache evict failed", zap.String("id", id.Hex()), zap.Error(err))
	}
}
