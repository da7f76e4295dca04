package dto

// MakeMatch selects how the make search parameter is applied.
type MakeMatch int

const (
	// MakeMatchExact resolves the make by exact name; an unknown make is an error.
	MakeMatchExact MakeMatch = iota
	// MakeMatchContains matches any make whose name contains the parameter.
	MakeMatchContains
)

// SearchParams carries the query parameters of the car search endpoints.
// Zero values mean "no filter".
type SearchParams struct {
	Make          string
	Model         string
	Year          int
	IsElectric    *bool
	Status        string
	Page          int
	Size          int
	SortBy        string
	SortDirection string
	MakeMatch     MakeMatch
}

// Page is one page of search results.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds a Page, deriving the page count from total and size.
// Content is never nil so that it encodes as an empty array.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
