package interfaces

import "mecanica_xpto_workflow/internal/domain/entities"

// Cascade outcomes reported to IWorkflowMetrics.
const (
	CascadeApplied = "applied"
	CascadeSkipped = "skipped"
	CascadeFailed  = "failed"
)

type IWorkflowMetrics interface {
	ObserveTransition(kind entities.EntityKind, from, to string)
	ObserveCascade(eventType, outcome string)
	ObserveStockMovement(movementType entities.MovementType, applied bool)
	ObserveRetryAttempt(operation string, retryable bool)
}
