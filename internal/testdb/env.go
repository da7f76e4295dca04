package testdb

import "os"

// Environment variables consulted for the test database URL, in order.
const (
	EnvTestDatabaseURL = "CATALOG_TEST_DB_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// ciVars are set by the common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// GetTestDatabaseURL returns the first non-empty test database URL, or ""
// when none is configured.
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if url := os.Getenv(name); url != "" {
			return url
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// IsCI reports whether the tests run under a CI provider.
func IsCI() bool {
	for _, name := range ciVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
