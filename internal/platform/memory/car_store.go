package memory

import (
	"cmp"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// CarStore is an in-memory implementation of store.CarStore.
// Makes are resolved through the make LookupStore it is given.
type CarStore struct {
	mu     sync.RWMutex
	cars   map[int64]domain.Car
	nextID int64
	makes  *LookupStore
}

// NewCarStore creates an in-memory car store backed by makes.
// It panics if makes is nil or holds another lookup kind.
func NewCarStore(makes *LookupStore) *CarStore {
	if makes == nil {
		panic("makes cannot be nil")
	}
	if makes.Kind() != domain.MakeKind {
		panic(fmt.Sprintf("car store needs a make store, got %q", makes.Kind().Key))
	}
	return &CarStore{
		cars:  make(map[int64]domain.Car),
		makes: makes,
	}
}

var _ store.CarStore = (*CarStore)(nil)

// withMake returns a copy of car with its make attached.
func (s *CarStore) withMake(ctx context.Context, car domain.Car) (*domain.Car, error) {
	m, err := s.makes.GetByID(ctx, car.MakeID)
	if err != nil {
		return nil, fmt.Errorf("car %d references missing make %d: %w", car.ID, car.MakeID, err)
	}
	car.Make = m
	return &car, nil
}

// snapshot returns every car with its make attached, in ID order.
func (s *CarStore) snapshot(ctx context.Context) ([]*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Car, 0, len(s.cars))
	for _, c := range s.cars {
		car, err := s.withMake(ctx, c)
		if err != nil {
			return nil, err
		}
		list = append(list, car)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// List implements store.CarStore.List.
func (s *CarStore) List(ctx context.Context) ([]*domain.Car, error) {
	return s.snapshot(ctx)
}

// GetByID implements store.CarStore.GetByID.
func (s *CarStore) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cars[id]
	if !ok {
		return nil, store.ErrCarNotFound
	}
	return s.withMake(ctx, c)
}

// Create implements store.CarStore.Create.
func (s *CarStore) Create(ctx context.Context, car *domain.Car) error {
	if _, err := s.makes.GetByID(ctx, car.MakeID); err != nil {
		return fmt.Errorf("%w: make with ID %d not found", store.ErrInvalidEntity, car.MakeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	car.ID = s.nextID

	stored := *car
	stored.Make = nil
	s.cars[car.ID] = stored
	return nil
}

// Update implements store.CarStore.Update.
func (s *CarStore) Update(ctx context.Context, car *domain.Car) error {
	if _, err := s.makes.GetByID(ctx, car.MakeID); err != nil {
		return fmt.Errorf("%w: make with ID %d not found", store.ErrInvalidEntity, car.MakeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cars[car.ID]
	if !ok {
		return store.ErrCarNotFound
	}

	stored := *car
	stored.Make = nil
	stored.CreatedAt = existing.CreatedAt
	s.cars[car.ID] = stored
	return nil
}

// UpdateStatus implements store.CarStore.UpdateStatus.
func (s *CarStore) UpdateStatus(_ context.Context, id int64, status domain.CarStatus, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[id]
	if !ok {
		return store.ErrCarNotFound
	}

	car.Status = string(status)
	car.UpdatedAt = &updatedAt
	s.cars[id] = car
	return nil
}

// Delete implements store.CarStore.Delete.
func (s *CarStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[id]; !ok {
		return store.ErrCarNotFound
	}
	delete(s.cars, id)
	return nil
}

// Search implements store.CarStore.Search. It applies the same predicates,
// ordering and paging as the SQL search.
func (s *CarStore) Search(ctx context.Context, filter store.CarFilter) ([]*domain.Car, int64, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]*domain.Car, 0, len(all))
	for _, car := range all {
		if matches(car, filter) {
			matched = append(matched, car)
		}
	}

	sortCars(matched, filter.Sort)

	total := int64(len(matched))
	start := min(filter.Offset(), len(matched))
	end := start + min(filter.Size, len(matched)-start)

	return matched[start:end], total, nil
}

func matches(car *domain.Car, f store.CarFilter) bool {
	if f.MakeID != nil && car.MakeID != *f.MakeID {
		return false
	}
	if f.MakeName != "" && !strings.Contains(car.MakeName(), f.MakeName) {
		return false
	}
	if f.Model != "" && !strings.Contains(car.Model, f.Model) {
		return false
	}
	if f.Year > 0 && car.Year != f.Year {
		return false
	}
	if f.IsElectric != nil && car.IsElectric != *f.IsElectric {
		return false
	}
	if f.Status != nil && car.Status != string(*f.Status) {
		return false
	}
	return true
}

// sortCars orders cars by the sort field, breaking ties on ID ascending.
// Unknown fields sort by ID.
func sortCars(cars []*domain.Car, spec domain.CarSort) {
	desc := spec.Direction == domain.SortDesc
	byID := spec.Field == domain.SortByID || !isSortField(spec.Field)

	sort.SliceStable(cars, func(i, j int) bool {
		a, b := cars[i], cars[j]
		if byID {
			if desc {
				return a.ID > b.ID
			}
			return a.ID < b.ID
		}

		c := compareBy(a, b, spec.Field)
		if c == 0 {
			return a.ID < b.ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func isSortField(field domain.SortField) bool {
	for _, f := range domain.SortFields {
		if f == field {
			return true
		}
	}
	return false
}

func compareBy(a, b *domain.Car, field domain.SortField) int {
	switch field {
	case domain.SortByMake:
		return cmp.Compare(a.MakeName(), b.MakeName())
	case domain.SortByModel:
		return cmp.Compare(a.Model, b.Model)
	case domain.SortByYear:
		return cmp.Compare(a.Year, b.Year)
	case domain.SortByPrice:
		return cmp.Compare(a.Price, b.Price)
	case domain.SortByIsElectric:
		return cmp.Compare(boolRank(a.IsElectric), boolRank(b.IsElectric))
	case domain.SortByPreviousOwner:
		return cmp.Compare(a.PreviousOwner, b.PreviousOwner)
	case domain.SortByStatus:
		return cmp.Compare(a.Status, b.Status)
	case domain.SortByCreatedAt:
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	case domain.SortByUpdatedAt:
		return compareOptional(a.UpdatedAt, b.UpdatedAt)
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareOptional orders unset values last, as PostgreSQL does for NULLs in
// ascending order.
func compareOptional(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
