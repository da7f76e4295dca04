// Package config loads server, database and search settings from an optional
// YAML file and CATALOG_* environment variables, and validates them before
// the server starts.
package config
