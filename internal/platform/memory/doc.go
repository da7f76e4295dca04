// Package memory provides in-process implementations of the store interfaces.
// They keep records in maps guarded by a RWMutex and apply the same filter,
// sort and paging rules as the PostgreSQL stores. They back the "memory"
// database driver and the HTTP end-to-end tests.
package memory
