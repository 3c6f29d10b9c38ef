package response

import (
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"time"
)

type ServiceExecutionResponse struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	ServiceOrderID  string     `json:"service_order_id"`
	MechanicID      string     `json:"mechanic_id"`
	ActualHours     float64    `json:"actual_hours,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ExecutionTransitionResponse struct {
	Execution    ServiceExecutionResponse `json:"execution"`
	ServiceOrder *ServiceOrderResponse    `json:"service_order,omitempty"`
	Cascade      CascadeResponse          `json:"cascade"`
}

func FromServiceExecution(e entities.ServiceExecution) ServiceExecutionResponse {
	return ServiceExecutionResponse{
		ID:              e.ID,
		Status:          string(e.Status),
		ServiceOrderID:  e.ServiceOrderID,
		MechanicID:      e.MechanicID,
		ActualHours:     e.ActualHours,
		CompletionNotes: e.CompletionNotes,
		StartedAt:       e.StartedAt,
		CompletedAt:     e.CompletedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromExecutionResult(r usecase.ExecutionResult) ExecutionTransitionResponse {
	out := ExecutionTransitionResponse{Execution: FromServiceExecution(r.Execution), Cascade: FromCascade(r.Cascade)}
	if r.ServiceOrder.ID != "" {
		so := FromServiceOrder(r.ServiceOrder)
		out.ServiceOrder = &so
	}
	return out
}
