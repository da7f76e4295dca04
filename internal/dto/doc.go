// Package dto defines the request and response payloads exchanged with API
// clients. JSON field names are camelCase.
package dto
