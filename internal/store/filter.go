package store

import (
	"math"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// CarFilter selects and orders cars for CarStore.Search.
// Zero-valued fields do not filter.
type CarFilter struct {
	// MakeID matches the make reference exactly.
	MakeID *int64
	// MakeName matches cars whose make name contains this text.
	MakeName string
	// Model matches cars whose model contains this text (case-sensitive).
	Model string
	// Year matches exactly when positive.
	Year       int
	IsElectric *bool
	Status     *domain.CarStatus

	// Page is zero-based.
	Page int
	Size int
	Sort domain.CarSort
}

// Normalize clamps paging into range and fills in the default sort.
// A non-positive size becomes defaultSize and sizes above maxSize are capped.
// Page is capped so that Offset never overflows; such a page is simply empty.
func (f CarFilter) Normalize(defaultSize, maxSize int) CarFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size <= 0 {
		f.Size = defaultSize
	}
	if maxSize > 0 && f.Size > maxSize {
		f.Size = maxSize
	}
	if f.Size > 0 && f.Page > math.MaxInt/f.Size {
		f.Page = math.MaxInt / f.Size
	}
	f.Sort = domain.CarSort{
		Field:     domain.ParseSortField(string(f.Sort.Field)),
		Direction: domain.ParseSortDirection(string(f.Sort.Direction)),
	}
	return f
}

// Offset returns the number of rows to skip.
func (f CarFilter) Offset() int {
	return f.Page * f.Size
}
