package domain

// Phase names a build phase recorded in a test case's status log.
type Phase string

const (
	// PhaseSharedlibBuild is the shared library build phase.
	PhaseSharedlibBuild Phase = "SHAREDLIB_BUILD"
	// PhaseModelBuild is the model component build phase.
	PhaseModelBuild Phase = "MODEL_BUILD"
)

// Status is the recorded outcome of a phase.
type Status string

const (
	// StatusPass marks a phase that completed successfully.
	StatusPass Status = "PASS"
	// StatusFail marks a phase that failed.
	StatusFail Status = "FAIL"
	// StatusPend marks a phase that has started but not yet finished.
	StatusPend Status = "PEND"
)
