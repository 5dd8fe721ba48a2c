package ports

import (
	"context"

	"go.trai.ch/casebuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=testdriver.go -destination=mocks/mock_testdriver.go -package=mocks

// Driver is a system test's build procedure bound to one case.
type Driver interface {
	Build(ctx context.Context, opts domain.TestBuildOptions) (bool, error)
}

// DriverFactory constructs the driver for a named system test.
type DriverFactory interface {
	// Find returns the driver registered for the test name, or an error
	// when the name is unknown or the driver cannot be constructed.
	Find(testName string, cse Case) (Driver, error)
}
