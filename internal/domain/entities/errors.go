package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStatusTransition                = errors.New("invalid status transition")
	ErrInvalidBudgetStatus                    = errors.New("invalid budget status")
	ErrBudgetExpired                          = errors.New("budget expired")
	ErrInvalidServiceOrderStatusForBudgetItem = errors.New("service order status does not allow budget items")
	ErrInsufficientStock                      = errors.New("insufficient stock")

	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidMovementType   = errors.New("invalid stock movement type")
	ErrInvalidBudgetItem     = errors.New("invalid budget item")
	ErrInvalidValidityPeriod = errors.New("invalid validity period")
	ErrInvalidActualHours    = errors.New("invalid actual hours")
	ErrMissingReason         = errors.New("reason is required")
	ErrUnknownStatus         = errors.New("unknown status")
)

// InvalidStatusTransitionError reports an attempt to move an aggregate along an edge
// that is not in the transition table. It is a business-rule violation, never transient.
type InvalidStatusTransitionError struct {
	EntityKind EntityKind
	From       string
	To         string
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid %s status transition from %s to %s", e.EntityKind, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error { return ErrInvalidStatusTransition }

// InvalidBudgetStatusError is returned when a budget operation is attempted in a status
// that does not allow it (approve/reject outside SENT/RECEIVED, items on a sent budget).
type InvalidBudgetStatusError struct {
	BudgetID string
	Status   BudgetStatus
	Action   string
}

func (e *InvalidBudgetStatusError) Error() string {
	return fmt.Sprintf("budget %s cannot %s while %s", e.BudgetID, e.Action, e.Status)
}

func (e *InvalidBudgetStatusError) Unwrap() error { return ErrInvalidBudgetStatus }

type BudgetExpiredError struct {
	BudgetID  string
	ExpiredAt time.Time
}

func (e *BudgetExpiredError) Error() string {
	return fmt.Sprintf("budget %s expired at %s", e.BudgetID, e.ExpiredAt.UTC().Format(time.RFC3339))
}

func (e *BudgetExpiredError) Unwrap() error { return ErrBudgetExpired }

type InvalidServiceOrderStatusForBudgetItemError struct {
	ServiceOrderID string
	Status         ServiceOrderStatus
}

func (e *InvalidServiceOrderStatusForBudgetItemError) Error() string {
	return fmt.Sprintf("cannot add budget items to service order %s in status %s (requires %s)",
		e.ServiceOrderID, e.Status, ServiceOrderStatusInDiagnosis)
}

func (e *InvalidServiceOrderStatusForBudgetItemError) Unwrap() error {
	return ErrInvalidServiceOrderStatusForBudgetItem
}

// InsufficientStockError carries the quantities involved in a rejected OUT movement.
type InsufficientStockError struct {
	StockID   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: available=%d requested=%d", e.StockID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
