package entities

import (
	"strings"
	"time"
)

type ServiceExecutionStatus string

const (
	ServiceExecutionStatusAssigned   ServiceExecutionStatus = "ASSIGNED"
	ServiceExecutionStatusInProgress ServiceExecutionStatus = "IN_PROGRESS"
	ServiceExecutionStatusCompleted  ServiceExecutionStatus = "COMPLETED"
)

// ServiceExecution is the mechanic's work on a service order.
// Uniqueness of the active execution per order is a coordinator rule, not enforced here.
type ServiceExecution struct {
	ID              string                 `json:"id"`
	Status          ServiceExecutionStatus `json:"status"`
	ServiceOrderID  string                 `json:"service_order_id"`
	MechanicID      string                 `json:"mechanic_id"`
	ActualHours     float64                `json:"actual_hours,omitempty"`
	CompletionNotes string                 `json:"completion_notes,omitempty"`
	StartedAt       *time.Time             `json:"started_at,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Version         int64                  `json:"version"`
}

func NewServiceExecution(id, serviceOrderID, mechanicID string) ServiceExecution {
	now := clock()
	return ServiceExecution{
		ID:             id,
		Status:         ServiceExecutionStatusAssigned,
		ServiceOrderID: serviceOrderID,
		MechanicID:     mechanicID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (e *ServiceExecution) Start() error {
	if err := e.transition(ServiceExecutionStatusInProgress); err != nil {
		return err
	}
	started := e.UpdatedAt
	e.StartedAt = &started
	return nil
}

func (e *ServiceExecution) Complete(actualHours float64, notes string) error {
	if actualHours < 0 {
		return ErrInvalidActualHours
	}
	if err := e.transition(ServiceExecutionStatusCompleted); err != nil {
		return err
	}
	completed := e.UpdatedAt
	e.CompletedAt = &completed
	e.ActualHours = actualHours
	e.CompletionNotes = strings.TrimSpace(notes)
	return nil
}

// IsActive reports whether the execution still blocks a new assignment for its order.
func (e *ServiceExecution) IsActive() bool {
	return e.Status != ServiceExecutionStatusCompleted
}

func (e *ServiceExecution) transition(target ServiceExecutionStatus) error {
	if err := ValidateTransition(EntityKindServiceExecution, string(e.Status), string(target)); err != nil {
		return err
	}
	e.Status = target
	e.UpdatedAt = clock()
	return nil
}
