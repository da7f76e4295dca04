package api

import (
	"context"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
)

// MockCarService is a mock implementation of service.CarService for testing
type MockCarService struct {
	ListFn         func(ctx context.Context) ([]*dto.CarResponse, error)
	GetFn          func(ctx context.Context, id int64) (*dto.CarResponse, error)
	CreateFn       func(ctx context.Context, req *dto.CarRequest) (*dto.CarResponse, error)
	UpdateFn       func(ctx context.Context, id int64, req *dto.CarRequest) (*dto.CarResponse, error)
	UpdateStatusFn func(ctx context.Context, id int64, status domain.CarStatus) (*dto.CarResponse, error)
	DeleteFn       func(ctx context.Context, id int64) (string, error)
	SearchFn       func(ctx context.Context, params dto.SearchParams) (*dto.Page[*dto.CarResponse], error)
}

func (m *MockCarService) List(ctx context.Context) ([]*dto.CarResponse, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*dto.CarResponse{}, nil
}

func (m *MockCarService) Get(ctx context.Context, id int64) (*dto.CarResponse, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockCarService) Create(ctx context.Context, req *dto.CarRequest) (*dto.CarResponse, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	return nil, nil
}

func (m *MockCarService) Update(
	ctx context.Context,
	id int64,
	req *dto.CarRequest,
) (*dto.CarResponse, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, req)
	}
	return nil, nil
}

func (m *MockCarService) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CarStatus,
) (*dto.CarResponse, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil, nil
}

func (m *MockCarService) Delete(ctx context.Context, id int64) (string, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return "", nil
}

func (m *MockCarService) Search(
	ctx context.Context,
	params dto.SearchParams,
) (*dto.Page[*dto.CarResponse], error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, params)
	}
	page := dto.NewPage[*dto.CarResponse](nil, 0, 10, 0)
	return &page, nil
}

// MockLookupService is a mock implementation of service.LookupService for testing
type MockLookupService struct {
	KindValue domain.LookupKind
	ListFn    func(ctx context.Context) ([]*dto.LookupResponse, error)
	GetFn     func(ctx context.Context, id int64) (*dto.LookupResponse, error)
	CreateFn  func(ctx context.Context, name string) (*dto.LookupResponse, error)
	UpdateFn  func(ctx context.Context, id int64, name string) (*dto.LookupResponse, error)
	DeleteFn  func(ctx context.Context, id int64) (string, error)
}

func (m *MockLookupService) Kind() domain.LookupKind {
	return m.KindValue
}

func (m *MockLookupService) List(ctx context.Context) ([]*dto.LookupResponse, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*dto.LookupResponse{}, nil
}

func (m *MockLookupService) Get(ctx context.Context, id int64) (*dto.LookupResponse, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockLookupService) Create(ctx context.Context, name string) (*dto.LookupResponse, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, name)
	}
	return nil, nil
}

func (m *MockLookupService) Update(ctx context.Context, id int64, name string) (*dto.LookupResponse, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, name)
	}
	return nil, nil
}

func (m *MockLookupService) Delete(ctx context.Context, id int64) (string, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return "", nil
}
