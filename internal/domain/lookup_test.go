package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewLookup(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

	lookup, err := NewLookup("Toyota", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !lookup.IsActive {
		t.Error("Expected new lookup to be active")
	}
	if lookup.CreatedAt != now.Unix() {
		t.Errorf("Expected CreatedAt %d, got %d", now.Unix(), lookup.CreatedAt)
	}
	if lookup.UpdatedAt != nil || lookup.DeletedAt != nil {
		t.Error("Expected UpdatedAt and DeletedAt to be nil")
	}

	_, err = NewLookup("  ", now)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected invalid request error, got %v", err)
	}
}

func TestLookupSoftDelete(t *testing.T) {
	t.Parallel()

	created := time.Unix(1700000000, 0)
	lookup, err := NewLookup("Sedan", created)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deletedAt := created.Add(time.Hour)
	lookup.SoftDelete(deletedAt)

	if lookup.IsActive {
		t.Error("Expected lookup to be inactive")
	}
	if lookup.DeletedAt == nil || *lookup.DeletedAt != deletedAt.Unix() {
		t.Errorf("Expected DeletedAt %d, got %v", deletedAt.Unix(), lookup.DeletedAt)
	}
	if lookup.Name != "Sedan" {
		t.Error("Expected name to be kept")
	}
}

func TestCarSetStatus(t *testing.T) {
	t.Parallel()

	car := &Car{Status: string(CarStatusActive), Make: &Lookup{Name: "Honda"}}
	now := time.Unix(1710000000, 0)

	car.SetStatus(CarStatusSold, now)

	if car.Status != "sold" {
		t.Errorf("Expected status sold, got %s", car.Status)
	}
	if car.UpdatedAt == nil || *car.UpdatedAt != now.Unix() {
		t.Errorf("Expected UpdatedAt %d, got %v", now.Unix(), car.UpdatedAt)
	}
	if car.MakeName() != "Honda" {
		t.Errorf("Expected make name Honda, got %s", car.MakeName())
	}
	if (&Car{}).MakeName() != "" {
		t.Error("Expected empty make name without a make")
	}
}
