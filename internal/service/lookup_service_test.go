package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLookupService(t *testing.T, kind domain.LookupKind) (LookupService, *MockLookupStore) {
	t.Helper()

	lookups := newMockLookupStore(kind)
	svc, err := NewLookupService(lookups, fixedClock, slog.Default())
	require.NoError(t, err)

	t.Cleanup(func() { lookups.AssertExpectations(t) })
	return svc, lookups
}

func TestNewLookupService(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		svc, err := NewLookupService(nil, nil, slog.Default())

		assert.ErrorIs(t, err, ErrNilDependency)
		assert.Nil(t, svc)
	})

	t.Run("kind comes from store", func(t *testing.T) {
		svc, err := NewLookupService(newMockLookupStore(domain.BodyStyleKind), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.BodyStyleKind, svc.Kind())
	})
}

func TestLookupServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.MakeKind)
		lookups.On("GetByName", ctx, "Honda").Return(nil, store.ErrLookupNotFound)
		lookups.On("Create", ctx, mock.MatchedBy(func(l *domain.Lookup) bool {
			return l.Name == "Honda" && l.IsActive && l.CreatedAt == fixedNow.Unix()
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Lookup).ID = 9
		}).Return(nil)

		resp, err := svc.Create(ctx, "Honda")

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.True(t, resp.IsActive)
		assert.Nil(t, resp.DeletedAt)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.MakeKind)
		lookups.On("GetByName", ctx, "Toyota").Return(toyota(), nil)

		_, err := svc.Create(ctx, "Toyota")

		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.EqualError(t, err, "Car Make already exists with name : 'Toyota'")
	})

	t.Run("unique constraint wins a race", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.FeatureKind)
		lookups.On("GetByName", ctx, "Sunroof").Return(nil, store.ErrLookupNotFound)
		lookups.On("Create", ctx, mock.Anything).Return(store.ErrNameExists)

		_, err := svc.Create(ctx, "Sunroof")

		assert.EqualError(t, err, "Car Feature already exists with name : 'Sunroof'")
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := newTestLookupService(t, domain.MakeKind)

		_, err := svc.Create(ctx, "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestLookupServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("own name is allowed", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.MakeKind)
		lookups.On("GetByID", ctx, int64(1)).Return(toyota(), nil)
		lookups.On("GetByName", ctx, "Toyota").Return(toyota(), nil)
		lookups.On("Update", ctx, mock.MatchedBy(func(l *domain.Lookup) bool {
			return l.ID == 1 && l.UpdatedAt != nil
		})).Return(nil)

		resp, err := svc.Update(ctx, 1, "Toyota")

		require.NoError(t, err)
		assert.Equal(t, "Toyota", resp.Name)
		assert.NotNil(t, resp.UpdatedAt)
	})

	t.Run("name held by another record", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.MakeKind)
		lookups.On("GetByID", ctx, int64(1)).Return(toyota(), nil)
		lookups.On("GetByName", ctx, "Honda").Return(&domain.Lookup{ID: 2, Name: "Honda"}, nil)

		_, err := svc.Update(ctx, 1, "Honda")

		assert.EqualError(t, err, "Car Make already exists with name : 'Honda'")
	})

	t.Run("missing id", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.BodyStyleKind)
		lookups.On("GetByID", ctx, int64(7)).Return(nil, store.ErrLookupNotFound)

		_, err := svc.Update(ctx, 7, "Coupe")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Car Body Style not found with id : '7'")
	})
}

func TestLookupServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft deletes", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.MakeKind)
		lookups.On("GetByID", ctx, int64(1)).Return(toyota(), nil)
		lookups.On("Update", ctx, mock.MatchedBy(func(l *domain.Lookup) bool {
			return !l.IsActive && l.DeletedAt != nil && *l.DeletedAt == fixedNow.Unix()
		})).Return(nil)

		msg, err := svc.Delete(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Car Make successfully deleted!", msg)
	})

	t.Run("messages per kind", func(t *testing.T) {
		for _, kind := range domain.LookupKinds {
			svc, lookups := newTestLookupService(t, kind)
			lookups.On("GetByID", ctx, int64(1)).Return(&domain.Lookup{ID: 1, Name: "x", IsActive: true}, nil)
			lookups.On("Update", ctx, mock.Anything).Return(nil)

			msg, err := svc.Delete(ctx, 1)

			require.NoError(t, err)
			assert.Equal(t, kind.Resource+" successfully deleted!", msg)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		svc, lookups := newTestLookupService(t, domain.FeatureKind)
		lookups.On("GetByID", ctx, int64(3)).Return(nil, store.ErrLookupNotFound)

		_, err := svc.Delete(ctx, 3)

		assert.EqualError(t, err, "Car Feature not found with id : '3'")
	})
}

func TestLookupServiceStoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, lookups := newTestLookupService(t, domain.MakeKind)
	dbErr := errors.New("timeout")
	lookups.On("List", ctx).Return(nil, dbErr)

	_, err := svc.List(ctx)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "make", svcErr.Service)
	assert.ErrorIs(t, err, dbErr)
}
