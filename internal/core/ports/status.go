package ports

import "go.trai.ch/casebuild/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=status.go -destination=mocks/mock_status.go -package=mocks

// StatusRecorder is a persistent log of phase outcomes for a test case.
type StatusRecorder interface {
	// SetStatus durably records the status of a phase. Entries for
	// other phases are preserved.
	SetStatus(phase domain.Phase, status domain.Status, comment string) error
	Close() error
}

// StatusStore opens the status recorder for a case directory.
type StatusStore interface {
	Open(dir string) (StatusRecorder, error)
}
