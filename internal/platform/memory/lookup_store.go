package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// LookupStore is an in-memory implementation of store.LookupStore.
type LookupStore struct {
	mu      sync.RWMutex
	kind    domain.LookupKind
	lookups map[int64]domain.Lookup
	nextID  int64
}

// NewLookupStore creates an in-memory store for one lookup kind.
func NewLookupStore(kind domain.LookupKind) *LookupStore {
	return &LookupStore{
		kind:    kind,
		lookups: make(map[int64]domain.Lookup),
	}
}

var _ store.LookupStore = (*LookupStore)(nil)

// Kind implements store.LookupStore.Kind.
func (s *LookupStore) Kind() domain.LookupKind {
	return s.kind
}

// List implements store.LookupStore.List.
func (s *LookupStore) List(_ context.Context) ([]*domain.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Lookup, 0, len(s.lookups))
	for _, l := range s.lookups {
		list = append(list, &l)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	return list, nil
}

// GetByID implements store.LookupStore.GetByID.
func (s *LookupStore) GetByID(_ context.Context, id int64) (*domain.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.get(id)
}

// get returns a copy of the record. Callers must hold the lock.
func (s *LookupStore) get(id int64) (*domain.Lookup, error) {
	l, ok := s.lookups[id]
	if !ok {
		return nil, store.ErrLookupNotFound
	}
	return &l, nil
}

// GetByName implements store.LookupStore.GetByName.
func (s *LookupStore) GetByName(_ context.Context, name string) (*domain.Lookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.idByName(name); ok {
		return s.get(id)
	}
	return nil, store.ErrLookupNotFound
}

// idByName finds a record by exact name. Callers must hold the lock.
func (s *LookupStore) idByName(name string) (int64, bool) {
	for id, l := range s.lookups {
		if l.Name == name {
			return id, true
		}
	}
	return 0, false
}

// Create implements store.LookupStore.Create.
func (s *LookupStore) Create(_ context.Context, lookup *domain.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByName(lookup.Name); taken {
		return store.ErrNameExists
	}

	s.nextID++
	lookup.ID = s.nextID
	s.lookups[lookup.ID] = *lookup
	return nil
}

// Update implements store.LookupStore.Update.
func (s *LookupStore) Update(_ context.Context, lookup *domain.Lookup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookups[lookup.ID]; !ok {
		return store.ErrLookupNotFound
	}
	if id, taken := s.idByName(lookup.Name); taken && id != lookup.ID {
		return store.ErrNameExists
	}

	s.lookups[lookup.ID] = *lookup
	return nil
}
