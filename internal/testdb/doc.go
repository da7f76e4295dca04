// Package testdb provides utilities for database integration tests: locating
// the test database, applying the embedded migrations and isolating each test
// in a rolled-back transaction.
//
// Tests that use it are guarded by the integration build tag and skip when no
// database URL is configured:
//
//	go test -tags=integration ./...
package testdb
