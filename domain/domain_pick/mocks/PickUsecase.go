package mocks

import (
	context "context"

	domain_pick "github.com/squirtles/musicroad/domain/domain_pick"
	mock "github.com/stretchr/testify/mock"
)

// PickUsecase is a mock type for the PickUsecase type
type PickUsecase struct {
	mock.Mock
}

// AddPick provides a mock function with given fields: ctx, pick
func (_m *PickUsecase) AddPick(ctx context.Context, pick *domain_pick.Pick) (*domain_pick.Pick, error) {
	ret := _m.Called(ctx, pick)

	if rf, ok := ret.Get(0).(func(context.Context, *domain_pick.Pick) *domain_pick.Pick); ok {
		return rf(ctx, pick), ret.Error(1)
	}
	return pickResult(ret)
}

// DeletePick provides a mock function with given fields: ctx, id
func (_m *PickUsecase) DeletePick(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// FavoritePick provides a mock function with given fields: ctx, id
func (_m *PickUsecase) FavoritePick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	ret := _m.Called(ctx, id)
	return pickResult(ret)
}

// FetchPick provides a mock function with given fields: ctx, id
func (_m *PickUsecase) FetchPick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	ret := _m.Called(ctx, id)
	return pickResult(ret)
}

// FetchPicksInArea provides a mock function with given fields: ctx, lat, lng, radiusInMeters
func (_m *PickUsecase) FetchPicksInArea(ctx context.Context, lat float64, lng float64, radiusInMeters float64) ([]domain_pick.Pick, error) {
	ret := _m.Called(ctx, lat, lng, radiusInMeters)

	var r0 []domain_pick.Pick
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain_pick.Pick)
	}

	return r0, ret.Error(1)
}

// UnfavoritePick provides a mock function with given fields: ctx, id
func (_m *PickUsecase) UnfavoritePick(ctx context.Context, id string) (*domain_pick.Pick, error) {
	ret := _m.Called(ctx, id)
	return pickResult(ret)
}

func pickResult(ret mock.Arguments) (*domain_pick.Pick, error) {
	var r0 *domain_pick.Pick
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain_pick.Pick)
	}

	return r0, ret.Error(1)
}

type mockConstructorTestingTNewPickUsecase interface {
	mock.TestingT
	Cleanup(func())
}

// NewPickUsecase creates a new instance of PickUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPickUsecase(t mockConstructorTestingTNewPickUsecase) *PickUsecase {
	m := &PickUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
