package ports

import (
	"context"

	"go.trai.ch/casebuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// Builder is the plain build delegate. It returns whether the build
// succeeded; tool failures are outcomes, not errors.
type Builder interface {
	Build(ctx context.Context, cse Case, opts domain.BuildOptions) (bool, error)
}
