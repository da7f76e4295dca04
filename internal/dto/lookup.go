package dto

import "time"

// LookupRequest is the payload for creating or renaming a make, feature or
// body style.
type LookupRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	// Feature is accepted in place of Name on the feature endpoints.
	Feature string `json:"feature,omitempty" validate:"omitempty,max=255"`
}

// LookupResponse is the API representation of a make, feature or body style.
type LookupResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
