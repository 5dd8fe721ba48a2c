// Package testdriver constructs the build procedures of automated system tests.
package testdriver

import (
	"strings"

	"go.trai.ch/casebuild/internal/core/domain"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.DriverFactory over the registered system
// test kinds.
type Factory struct {
	logger  ports.Logger
	builder ports.Builder
	status  ports.StatusStore
}

// New creates a new Factory.
func New(logger ports.Logger, builder ports.Builder, status ports.StatusStore) *Factory {
	return &Factory{
		logger:  logger,
		builder: builder,
		status:  status,
	}
}

// Find returns the driver for the named test bound to the case. The
// kind is the leading alphabetic prefix of the test name, so a case
// registered as "ERS_D.f19_g16" dispatches on "ERS".
func (f *Factory) Find(testName string, cse ports.Case) (ports.Driver, error) {
	base := f.base(testName, cse)

	switch testKind(testName) {
	case "SMS":
		return newSmoke(base), nil
	case "ERS":
		return newExactRestart(base), nil
	case "ERP":
		return newRestartPELayout(base, cse)
	case "PEM":
		return newModifiedTaskCount(base, cse)
	default:
		return nil, zerr.With(domain.ErrUnknownTest, "test_name", testName)
	}
}

func (f *Factory) base(testName string, cse ports.Case) systemTest {
	return systemTest{
		name:    testName,
		cse:     cse,
		builder: f.builder,
		status:  f.status,
		logger:  f.logger,
	}
}

// testKind extracts the leading alphabetic prefix of a test name.
func testKind(testName string) string {
	for i, r := range testName {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ", r) {
			return testName[:i]
		}
	}
	return testName
}
