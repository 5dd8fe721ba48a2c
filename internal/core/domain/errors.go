package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when an identifier is not part of the fixed target universe.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrUnknownTest is returned when a case names a system test no driver is registered for.
	ErrUnknownTest = zerr.New("unknown system test")

	// ErrBuildListWithTest is returned when an explicit build list is combined with a test case.
	// Test-driven builds always build the test's own required scope.
	ErrBuildListWithTest = zerr.New("explicit build list is not allowed for test cases")

	// ErrBuildFailed is returned when a build or clean delegate reports failure.
	ErrBuildFailed = zerr.New("build failed")

	// ErrCaseNotFound is returned when a case root holds no case configuration.
	ErrCaseNotFound = zerr.New("case configuration not found")

	// ErrReadOnlyCase is returned when a value is set on a case opened read-only.
	ErrReadOnlyCase = zerr.New("case opened read-only")
)
