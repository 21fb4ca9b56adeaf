// Package git wraps the git executable for repository queries and index
// mutations, and tracks whether the wrapper can still be trusted.
//
// Tests use testify's require and assert. Unit tests drive a fake Backend;
// integration tests run git from PATH and skip without it.
package git
