package domain

import (
	"strings"
	"time"
)

// Lookup is a reference entity identified by a unique name: a car make,
// feature or body style. Lookups are soft-deleted.
type Lookup struct {
	ID        int64
	Name      string
	IsActive  bool
	CreatedAt int64
	UpdatedAt *int64
	DeletedAt *int64
}

// NewLookup creates an active lookup named name, created at now.
func NewLookup(name string, now time.Time) (*Lookup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidRequestError("'name' must not be empty")
	}
	return &Lookup{
		Name:      name,
		IsActive:  true,
		CreatedAt: now.UTC().Unix(),
	}, nil
}

// Rename replaces the name and stamps the update time.
func (l *Lookup) Rename(name string, now time.Time) {
	l.Name = name
	updated := now.UTC().Unix()
	l.UpdatedAt = &updated
}

// SoftDelete marks the lookup inactive and stamps the deletion time.
// The record itself is kept.
func (l *Lookup) SoftDelete(now time.Time) {
	deleted := now.UTC().Unix()
	l.IsActive = false
	l.DeletedAt = &deleted
}

// LookupKind identifies one of the lookup entity types.
type LookupKind struct {
	// Key is the short machine name, e.g. "make".
	Key string
	// Resource is the human-readable name used in messages.
	Resource string
}

// The three lookup kinds.
var (
	MakeKind      = LookupKind{Key: "make", Resource: "Car Make"}
	FeatureKind   = LookupKind{Key: "feature", Resource: "Car Feature"}
	BodyStyleKind = LookupKind{Key: "body_style", Resource: "Car Body Style"}
)

// LookupKinds lists every lookup kind.
var LookupKinds = []LookupKind{MakeKind, FeatureKind, BodyStyleKind}
