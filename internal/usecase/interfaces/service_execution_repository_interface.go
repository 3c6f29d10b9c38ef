package interfaces

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
)

type IServiceExecutionRepository interface {
	Create(ctx context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error)
	GetByID(ctx context.Context, id string) (entities.ServiceExecution, error)
	Save(ctx context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error)
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceExecution, error)
}
