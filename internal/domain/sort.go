package domain

import "strings"

// SortField names a sortable car response field.
type SortField string

// Sortable fields. Values match the JSON names of the car response.
const (
	SortByID            SortField = "id"
	SortByMake          SortField = "make"
	SortByModel         SortField = "model"
	SortByYear          SortField = "year"
	SortByPrice         SortField = "price"
	SortByIsElectric    SortField = "isElectric"
	SortByPreviousOwner SortField = "previousOwner"
	SortByStatus        SortField = "status"
	SortByCreatedAt     SortField = "createdAt"
	SortByUpdatedAt     SortField = "updatedAt"
)

// SortFields is the allow-list of sortable fields.
var SortFields = []SortField{
	SortByID, SortByMake, SortByModel, SortByYear, SortByPrice,
	SortByIsElectric, SortByPreviousOwner, SortByStatus, SortByCreatedAt, SortByUpdatedAt,
}

// ParseSortField resolves s against SortFields. Unknown or empty names
// resolve to SortByID.
func ParseSortField(s string) SortField {
	for _, field := range SortFields {
		if string(field) == s {
			return field
		}
	}
	return SortByID
}

// SortDirection is ASC or DESC.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection accepts asc/desc in any case and defaults to SortAsc.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// CarSort is a normalized sort specification; both parts are always set.
type CarSort struct {
	Field     SortField
	Direction SortDirection
}

// NewCarSort normalizes raw sortBy and sortDirection parameters.
func NewCarSort(field, direction string) CarSort {
	return CarSort{
		Field:     ParseSortField(field),
		Direction: ParseSortDirection(direction),
	}
}
