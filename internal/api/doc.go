// Package api handles incoming HTTP requests, request decoding and
// validation, and response formatting. It acts as an adapter between
// external clients and the internal application services.
//
// Every failure is turned into an ErrorDetails body by HandleAPIError, the
// one place where error kinds are mapped to HTTP status codes.
package api
