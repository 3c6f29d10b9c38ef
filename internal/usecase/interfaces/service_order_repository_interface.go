package interfaces

import (
	"context"
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
)

// ErrConcurrentUpdate is returned by Save when the stored Version no longer matches the
// version the caller loaded. Saved entities come back with the version incremented.
var ErrConcurrentUpdate = errors.New("concurrent update")

// IServiceOrderRepository abstracts persistence for ServiceOrder.
//
// GetByID and Save return a zero-value order (empty ID) when the order does not exist.
// Save fails with ErrConcurrentUpdate on a stale Version.
type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
}
