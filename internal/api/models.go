package api

import "github.com/kevinaldroniya/crudSonarCube/internal/dto"

// Type names reported by TypeMismatchError.
const (
	typeInt64 = "int64"
	typeInt   = "int"
	typeBool  = "bool"
)

// Request and response bodies are defined in the dto package; the aliases
// below name them from the handler's point of view.
type (
	// CarRequest is the body of POST /car and PUT /car/{id}.
	CarRequest = dto.CarRequest
	// CarResponse is returned by every car endpoint except delete.
	CarResponse = dto.CarResponse
	// CarStatusRequest is the body of PATCH /car/{id}/status.
	CarStatusRequest = dto.CarStatusRequest
	// LookupRequest is the body for creating or renaming a make, feature or body style.
	LookupRequest = dto.LookupRequest
	// LookupResponse is returned by the make, feature and body style endpoints.
	LookupResponse = dto.LookupResponse
	// CarPage is returned by the search endpoints.
	CarPage = dto.Page[*dto.CarResponse]
)
