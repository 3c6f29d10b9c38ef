package response

import (
	"mecanica_xpto_workflow/internal/domain/entities"
	"time"
)

type ServiceOrderResponse struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	Final              bool       `json:"final"`
	ClientID           string     `json:"client_id"`
	VehicleID          string     `json:"vehicle_id"`
	Notes              string     `json:"notes,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	RequestDate        time.Time  `json:"request_date"`
	DeliveryDate       *time.Time `json:"delivery_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:                 o.ID,
		Status:             string(o.Status),
		Final:              o.IsInFinalState(),
		ClientID:           o.ClientID,
		VehicleID:          o.VehicleID,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		RequestDate:        o.RequestDate,
		DeliveryDate:       o.DeliveryDate,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
