package repository_pick

import (
	"context"
	"errors"
	"fmt"

	"github.com/squirtles/musicroad/domain"
	"github.com/squirtles/musicroad/domain/domain_pick"
	"github.com/squirtles/musicroad/mongo"
	"github.com/squirtles/musicroad/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type pickRepository struct {
	*repository.BaseMongoRepository[domain_pick.PickDocument]
	db mongo.Database
}

func NewPickRepository(db mongo.Database) domain_pick.PickRepository {
	return &pickRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[domain_pick.PickDocument](db, domain.CollectionPick),
		db:                  db,
	}
}

// QueryRange startHash <= geo_hash <= endHash，按 geo_hash 升序；无法解码的文档跳过
func (r *pickRepository) QueryRange(ctx context.Context, startHash, endHash string) ([]domain_pick.PickDocument, error) {
	filter := bson.M{
		"geo_hash": bson.M{
			"$gte": startHash,
			"$lte": endHash,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "geo_hash", Value: 1}})

	coll := r.db.Collection(domain.CollectionPick)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("range query [%s, %s] failed: %w", startHash, endHash, err)
	}
	defer cursor.Close(ctx)

	docs := make([]domain_pick.PickDocument, 0)
	for cursor.Next(ctx) {
		var doc domain_pick.PickDocument
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("range query [%s, %s] cursor error: %w", startHash, endHash, err)
	}

	return docs, nil
}

func (r *pickRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_pick.PickDocument, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	doc, err := r.BaseMongoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	return doc, nil
}

func (r *pickRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := r.BaseMongoRepository.Delete(ctx, id); err != nil {
		return mapNotFound(err, id)
	}
	return nil
}

// IncrementFavorite $inc favorite_count，减少时不会低于 0
func (r *pickRepository) IncrementFavorite(ctx context.Context, id primitive.ObjectID, delta int) (*domain_pick.PickDocument, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["favorite_count"] = bson.M{"$gte": -delta}
	}
	update := bson.M{"$inc": bson.M{"favorite_count": delta}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	coll := r.db.Collection(domain.CollectionPick)
	var doc domain_pick.PickDocument
	err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return &doc, nil
	}
	if !errors.Is(err, driver.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update favorite count: %w", err)
	}

	// 未命中：文档不存在，或计数已经为 0
	return r.GetByID(ctx, id)
}

func checkID(id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id cannot be empty", domain_pick.ErrInvalidArgument)
	}
	return nil
}

func mapNotFound(err error, id primitive.ObjectID) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s", domain_pick.ErrPickNotFound, id.Hex())
	}
	return err
}
