// Package store declares the persistence contracts of the car catalog: one
// interface for cars and one shared by the lookup entities (makes, features
// and body styles), plus the sentinel errors every implementation returns.
// Implementations live under internal/platform.
package store
