package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/squirtles/musicroad/domain"
	"github.com/squirtles/musicroad/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
	now        func() time.Time
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
		now:        time.Now,
	}
}

func (r *BaseMongoRepository[T]) coll() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create 创建新实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	// 设置创建时间（如果实体有相关字段）
	r.setTimestamps(entity, true)

	resultID, err := r.coll().InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	// 设置生成的ID
	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	var entity T
	err := r.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return &entity, nil
}

// Delete 删除实体
func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return errors.New("id cannot be empty")
	}

	deletedCount, err := r.coll().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	if deletedCount == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id.Hex())
	}

	return nil
}

// 辅助方法：设置时间戳
// created_at 支持 primitive.DateTime 与 int64（epoch 秒），已有值不覆盖
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	now := r.now()
	dateTime := primitive.NewDateTimeFromTime(now)

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		isCreatedAt := fieldName == "created_at" || fieldName == "CreatedAt"
		isUpdatedAt := fieldName == "updated_at" || fieldName == "UpdatedAt"
		if !(isCreate && isCreatedAt) && !isUpdatedAt {
			continue
		}

		switch {
		case field.Type() == reflect.TypeOf(dateTime):
			field.Set(reflect.ValueOf(dateTime))
		case field.Kind() == reflect.Int64 && (isUpdatedAt || field.Int() == 0):
			field.SetInt(now.Unix())
		}
	}
}

// 设置实体ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		if matchesIDField(fieldName) && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
			field.Set(reflect.ValueOf(id))
			return
		}
	}
}

// 辅助函数：检查字段名是否匹配ID
func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}
