package request

import (
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"strings"
)

var ErrInvalidServiceOrderStatus = errors.New("invalid service order status")

type CreateServiceOrderRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	VehicleID string `json:"vehicle_id" binding:"required"`
	Notes     string `json:"notes"`
	// Origin is CLIENT (default) or EMPLOYEE; employee-opened orders start as RECEIVED.
	Origin string `json:"origin"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.CreateServiceOrderInput {
	return usecase.CreateServiceOrderInput{
		ClientID:  r.ClientID,
		VehicleID: r.VehicleID,
		Notes:     r.Notes,
		Origin:    entities.ServiceOrderOrigin(strings.ToUpper(strings.TrimSpace(r.Origin))),
	}
}

type CancelServiceOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// UpdateServiceOrderStatusRequest is the manual correction payload.
type UpdateServiceOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (r UpdateServiceOrderStatusRequest) ResolveStatus() (entities.ServiceOrderStatus, error) {
	status := strings.ToUpper(strings.TrimSpace(r.Status))
	if !entities.IsKnownStatus(entities.EntityKindServiceOrder, status) {
		return "", ErrInvalidServiceOrderStatus
	}
	return entities.ServiceOrderStatus(status), nil
}
