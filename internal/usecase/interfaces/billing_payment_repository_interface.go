package interfaces

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error)
}
