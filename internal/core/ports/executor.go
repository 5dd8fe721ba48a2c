package ports

import (
	"context"
	"io"

	"go.trai.ch/casebuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// Executor runs native build tool commands.
type Executor interface {
	// Execute runs the command, streaming its output to the given
	// writers. A non-zero exit is returned as an error carrying the
	// exit code.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
