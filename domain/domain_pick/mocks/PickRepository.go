package mocks

import (
	context "context"

	domain_pick "github.com/squirtles/musicroad/domain/domain_pick"
	mock "github.com/stretchr/testify/mock"

	primitive "go.mongodb.org/mongo-driver/bson/primitive"
)

// PickRepository is a mock type for the PickRepository type
type PickRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, doc
func (_m *PickRepository) Create(ctx context.Context, doc *domain_pick.PickDocument) error {
	ret := _m.Called(ctx, doc)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain_pick.PickDocument) error); ok {
		r0 = rf(ctx, doc)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *PickRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *PickRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain_pick.PickDocument, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain_pick.PickDocument
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID) *domain_pick.PickDocument); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_pick.PickDocument)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, primitive.ObjectID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IncrementFavorite provides a mock function with given fields: ctx, id, delta
func (_m *PickRepository) IncrementFavorite(ctx context.Context, id primitive.ObjectID, delta int) (*domain_pick.PickDocument, error) {
	ret := _m.Called(ctx, id, delta)

	var r0 *domain_pick.PickDocument
	if rf, ok := ret.Get(0).(func(context.Context, primitive.ObjectID, int) *domain_pick.PickDocument); ok {
		r0 = rf(ctx, id, delta)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_pick.PickDocument)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, primitive.ObjectID, int) error); ok {
		r1 = rf(ctx, id, delta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// QueryRange provides a mock function with given fields: ctx, startHash, endHash
func (_m *PickRepository) QueryRange(ctx context.Context, startHash string, endHash string) ([]domain_pick.PickDocument, error) {
	ret := _m.Called(ctx, startHash, endHash)

	var r0 []domain_pick.PickDocument
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []domain_pick.PickDocument); ok {
		r0 = rf(ctx, startHash, endHash)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain_pick.PickDocument)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, startHash, endHash)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type mockConstructorTestingTNewPickRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewPickRepository creates a new instance of PickRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPickRepository(t mockConstructorTestingTNewPickRepository) *PickRepository {
	m := &PickRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
