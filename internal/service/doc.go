// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Car pipeline:
//   - ValidateCarRequest applies the ordered field rules and reports the first violation
//   - the car mapper encodes nested values into their stored text form and decodes them back
//   - CarService coordinates validation, make resolution, persistence and search
//
// 2. Lookups:
//   - LookupService manages makes, features and body styles with one implementation
//   - names are unique; deletion is a soft delete
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
