package interfaces

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
)

// IBudgetRepository abstracts persistence for Budget, items included.
// Not-found lookups return a zero-value budget. Save fails with ErrConcurrentUpdate on a stale Version.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error)
}
