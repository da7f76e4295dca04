// Package shared holds the HTTP plumbing used by every handler: JSON and
// plain-text responders, the ErrorDetails error body, request body decoding
// and struct-tag validation.
package shared
