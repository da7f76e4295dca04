package service

import (
	"context"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCarStore mocks the store.CarStore interface
type MockCarStore struct {
	mock.Mock
}

func (m *MockCarStore) List(ctx context.Context) ([]*domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Car), args.Error(1)
}

func (m *MockCarStore) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarStore) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarStore) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarStore) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CarStatus,
	updatedAt int64,
) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

func (m *MockCarStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarStore) Search(
	ctx context.Context,
	filter store.CarFilter,
) ([]*domain.Car, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Car), args.Get(1).(int64), args.Error(2)
}

// MockLookupStore mocks the store.LookupStore interface
type MockLookupStore struct {
	mock.Mock
	kind domain.LookupKind
}

func newMockLookupStore(kind domain.LookupKind) *MockLookupStore {
	return &MockLookupStore{kind: kind}
}

func (m *MockLookupStore) Kind() domain.LookupKind {
	return m.kind
}

func (m *MockLookupStore) List(ctx context.Context) ([]*domain.Lookup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lookup), args.Error(1)
}

func (m *MockLookupStore) GetByID(ctx context.Context, id int64) (*domain.Lookup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lookup), args.Error(1)
}

func (m *MockLookupStore) GetByName(ctx context.Context, name string) (*domain.Lookup, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lookup), args.Error(1)
}

func (m *MockLookupStore) Create(ctx context.Context, lookup *domain.Lookup) error {
	args := m.Called(ctx, lookup)
	return args.Error(0)
}

func (m *MockLookupStore) Update(ctx context.Context, lookup *domain.Lookup) error {
	args := m.Called(ctx, lookup)
	return args.Error(0)
}
