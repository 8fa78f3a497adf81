// Package shared provides common utilities and test helpers used across
// the codebase. It serves as a central location for functionality that
// doesn't belong to any specific domain or architectural layer.
//
// The testutil subpackage provides a buffered slog handler for
// asserting on structured log output in tests.
//
// This package should only contain test utilities used by multiple
// packages and generic helpers with no domain-specific logic. It must
// not grow business logic or circular dependencies with other internal
// packages.
package shared
