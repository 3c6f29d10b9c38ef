package entities

import (
	"strings"
	"time"
)

// clock is swapped in tests that need deterministic timestamps or expiry checks.
var clock = func() time.Time { return time.Now().UTC() }

// Now is the UTC time used for every timestamp set by this package.
func Now() time.Time { return clock() }

// ServiceOrderStatus represents the lifecycle of a service order (ordem de serviço).
type ServiceOrderStatus string

const (
	ServiceOrderStatusRequested        ServiceOrderStatus = "REQUESTED"
	ServiceOrderStatusReceived         ServiceOrderStatus = "RECEIVED"
	ServiceOrderStatusInDiagnosis      ServiceOrderStatus = "IN_DIAGNOSIS"
	ServiceOrderStatusAwaitingApproval ServiceOrderStatus = "AWAITING_APPROVAL"
	ServiceOrderStatusApproved         ServiceOrderStatus = "APPROVED"
	ServiceOrderStatusScheduled        ServiceOrderStatus = "SCHEDULED"
	ServiceOrderStatusInExecution      ServiceOrderStatus = "IN_EXECUTION"
	ServiceOrderStatusFinished         ServiceOrderStatus = "FINISHED"
	ServiceOrderStatusDelivered        ServiceOrderStatus = "DELIVERED"
	ServiceOrderStatusRejected         ServiceOrderStatus = "REJECTED"
	ServiceOrderStatusCancelled        ServiceOrderStatus = "CANCELLED"
)

// ServiceOrderOrigin tells who opened the order; it decides the initial status.
type ServiceOrderOrigin string

const (
	ServiceOrderOriginClient   ServiceOrderOrigin = "CLIENT"
	ServiceOrderOriginEmployee ServiceOrderOrigin = "EMPLOYEE"
)

// ServiceOrder owns the workshop lifecycle of a vehicle visit.
//
// Budgets and executions reference it through ServiceOrderID; the order never holds
// pointers to them. Status, DeliveryDate and CancellationReason change only through
// the methods below.
type ServiceOrder struct {
	ID                 string             `json:"id"`
	Status             ServiceOrderStatus `json:"status"`
	RequestDate        time.Time          `json:"request_date"`
	DeliveryDate       *time.Time         `json:"delivery_date,omitempty"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	ClientID           string             `json:"client_id"`
	VehicleID          string             `json:"vehicle_id"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	Version            int64              `json:"version"` // stored revision, checked on save
}

// NewServiceOrder opens an order in REQUESTED (client origin) or RECEIVED (employee origin).
func NewServiceOrder(id, clientID, vehicleID, notes string, origin ServiceOrderOrigin) ServiceOrder {
	now := clock()
	status := ServiceOrderStatusRequested
	if origin == ServiceOrderOriginEmployee {
		status = ServiceOrderStatusReceived
	}
	return ServiceOrder{
		ID:          id,
		Status:      status,
		RequestDate: now,
		Notes:       strings.TrimSpace(notes),
		ClientID:    clientID,
		VehicleID:   vehicleID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (o *ServiceOrder) MarkReceived() error { return o.transition(ServiceOrderStatusReceived) }

func (o *ServiceOrder) MarkInDiagnosis() error { return o.transition(ServiceOrderStatusInDiagnosis) }

func (o *ServiceOrder) MarkAwaitingApproval() error {
	return o.transition(ServiceOrderStatusAwaitingApproval)
}

func (o *ServiceOrder) MarkApproved() error { return o.transition(ServiceOrderStatusApproved) }

func (o *ServiceOrder) MarkInExecution() error { return o.transition(ServiceOrderStatusInExecution) }

func (o *ServiceOrder) MarkFinished() error { return o.transition(ServiceOrderStatusFinished) }

// MarkDelivered also stamps DeliveryDate.
func (o *ServiceOrder) MarkDelivered() error {
	if err := o.transition(ServiceOrderStatusDelivered); err != nil {
		return err
	}
	delivered := o.UpdatedAt
	o.DeliveryDate = &delivered
	return nil
}

// MarkRejected is legal from REQUESTED, AWAITING_APPROVAL and DELIVERED.
func (o *ServiceOrder) MarkRejected() error { return o.transition(ServiceOrderStatusRejected) }

// Cancel is legal from REQUESTED, RECEIVED and IN_DIAGNOSIS and records the reason.
func (o *ServiceOrder) Cancel(reason string) error {
	if err := ValidateTransition(EntityKindServiceOrder, string(o.Status), string(ServiceOrderStatusCancelled)); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrMissingReason
	}
	if err := o.transition(ServiceOrderStatusCancelled); err != nil {
		return err
	}
	o.CancellationReason = reason
	return nil
}

// UpdateStatus applies an externally driven transition (administrative override)
// through the same table as the named methods. Targets with side effects are routed
// to their dedicated method so the invariants on DeliveryDate/CancellationReason hold.
func (o *ServiceOrder) UpdateStatus(target ServiceOrderStatus, reason string) error {
	if !IsKnownStatus(EntityKindServiceOrder, string(target)) {
		return ErrUnknownStatus
	}
	switch target {
	case ServiceOrderStatusDelivered:
		return o.MarkDelivered()
	case ServiceOrderStatusCancelled:
		return o.Cancel(reason)
	default:
		return o.transition(target)
	}
}

func (o *ServiceOrder) CanAddBudgetItems() bool {
	return o.Status == ServiceOrderStatusInDiagnosis
}

func (o *ServiceOrder) CanBeApprovedOrRejected() bool {
	return o.Status == ServiceOrderStatusAwaitingApproval
}

func (o *ServiceOrder) IsInFinalState() bool {
	return IsFinalStatus(EntityKindServiceOrder, string(o.Status))
}

func (o *ServiceOrder) transition(target ServiceOrderStatus) error {
	if err := ValidateTransition(EntityKindServiceOrder, string(o.Status), string(target)); err != nil {
		return err
	}
	o.Status = target
	o.UpdatedAt = clock()
	return nil
}
