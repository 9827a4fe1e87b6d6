package mocks

import (
	"context"

	"github.com/squirtles/musicroad/mongo"
	"github.com/stretchr/testify/mock"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Database struct {
	mock.Mock
}

func (_m *Database) Collection(name string) mongo.Collection {
	ret := _m.Called(name)
	return ret.Get(0).(mongo.Collection)
}

type Collection struct {
	mock.Mock
}

func (_m *Collection) FindOne(ctx context.Context, filter interface{}) mongo.SingleResult {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(mongo.SingleResult)
}

func (_m *Collection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	ret := _m.Called(ctx, document)
	return ret.Get(0), ret.Error(1)
}

func (_m *Collection) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	ret := _m.Called(ctx, filter)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *Collection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (mongo.Cursor, error) {
	ret := _m.Called(ctx, filter, opts)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(mongo.Cursor), ret.Error(1)
}

func (_m *Collection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) mongo.SingleResult {
	ret := _m.Called(ctx, filter, update, opts)
	return ret.Get(0).(mongo.SingleResult)
}

func (_m *Collection) Indexes() mongo.IndexView {
	ret := _m.Called()
	return ret.Get(0).(mongo.IndexView)
}

// SingleResult Decode 的写入由调用方通过 Run 完成
type SingleResult struct {
	mock.Mock
}

func (_m *SingleResult) Decode(v interface{}) error {
	ret := _m.Called(v)
	return ret.Error(0)
}

type Cursor struct {
	mock.Mock
}

func (_m *Cursor) Close(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *Cursor) Next(ctx context.Context) bool {
	return _m.Called(ctx).Bool(0)
}

func (_m *Cursor) Decode(v interface{}) error {
	return _m.Called(v).Error(0)
}

func (_m *Cursor) Err() error {
	return _m.Called().Error(0)
}

type IndexView struct {
	mock.Mock
}

func (_m *IndexView) CreateOne(ctx context.Context, model driver.IndexModel) (string, error) {
	ret := _m.Called(ctx, model)
	return ret.String(0), ret.Error(1)
}
