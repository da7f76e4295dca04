// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles query construction, including the dynamic car search, row mapping
// between domain entities and database records, error translation and the
// embedded schema migrations.
package postgres
