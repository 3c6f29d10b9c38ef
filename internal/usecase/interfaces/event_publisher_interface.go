package interfaces

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
)

// IEventPublisher delivers workflow events (cascade outcomes) to interested parties.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}
