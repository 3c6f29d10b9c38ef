package entities

import "time"

const (
	EventTypeBudgetSent         = "budget.sent"
	EventTypeBudgetApproved     = "budget.approved"
	EventTypeBudgetRejected     = "budget.rejected"
	EventTypeExecutionStarted   = "execution.started"
	EventTypeExecutionCompleted = "execution.completed"
)

type EventLevel string

const (
	EventLevelInfo    EventLevel = "info"
	EventLevelWarning EventLevel = "warning"
)

// DomainEvent describes the outcome of a coordinator operation, including its cascade.
// Warning-level events mark cascades that were skipped or failed and may need a
// manual correction on the service order.
type DomainEvent struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	Level          EventLevel        `json:"level"`
	AggregateKind  EntityKind        `json:"aggregate_kind"`
	AggregateID    string            `json:"aggregate_id"`
	ServiceOrderID string            `json:"service_order_id"`
	Message        string            `json:"message"`
	Data           map[string]string `json:"data,omitempty"`
	OccurredAt     time.Time         `json:"occurred_at"`
}
