// Package ports defines the core interfaces for the application.
package ports

//go:generate go run go.uber.org/mock/mockgen -source=case.go -destination=mocks/mock_case.go -package=mocks

// Case is a scoped handle to a case's persisted configuration.
// It is held for the duration of one build invocation and must be
// closed on every exit path.
type Case interface {
	// Root returns the case root directory.
	Root() string
	// Get looks up a configuration value. The second return value
	// reports whether the key is present.
	Get(key string) (string, bool)
	// Set updates a configuration value. It fails on read-only cases.
	Set(key, value string) error
	// Values returns a copy of all configuration values.
	Values() map[string]string
	// Close flushes pending mutations durably. It is idempotent.
	Close() error
}

// CaseStore opens case handles.
type CaseStore interface {
	Open(root string, readWrite, record bool) (Case, error)
}
