package ports

import (
	"context"

	"go.trai.ch/casebuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks

// Cleaner removes prior build artifacts for a case.
type Cleaner interface {
	// Clean removes artifacts for the given selections. A nil selection
	// means that kind of cleaning was not requested.
	Clean(ctx context.Context, cse Case, clean *domain.Selection, cleanAll bool, cleanDepends *domain.Selection) error
}
