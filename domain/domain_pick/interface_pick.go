package domain_pick

import (
	"context"

	"github.com/squirtles/musicroad/util/geo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoIndex 计算覆盖圆形区域的 geohash 区间，纯函数
type GeoIndex interface {
	Coverage(center geo.Location, radius float64) []geo.Bound
}

// PickRangeQuerier 按 geo_hash 范围扫描 picks 集合
type PickRangeQuerier interface {
	QueryRange(ctx context.Context, startHash, endHash string) ([]PickDocument, error)
}

// PickRepository Pick 存储层接口
type PickRepository interface {
	PickRangeQuerier

	Create(ctx context.Context, doc *PickDocument) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*PickDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementFavorite(ctx context.Context, id primitive.ObjectID, delta int) (*PickDocument, error)
}

type PickFinder interface {
	FindPicksInArea(ctx context.Context, center geo.Location, radiusInMeters float64) ([]Pick, error)
}

// PickUsecase 对外的 Pick 业务接口
type PickUsecase interface {
	FetchPick(ctx context.Context, id string) (*Pick, error)
	FetchPicksInArea(ctx context.Context, lat, lng, radiusInMeters float64) ([]Pick, error)
	AddPick(ctx context.Context, pick *Pick) (*Pick, error)
	DeletePick(ctx context.Context, id string) error
	FavoritePick(ctx context.Context, id string) (*Pick, error)
	UnfavoritePick(ctx context.Context, id string) (*Pick, error)
}
