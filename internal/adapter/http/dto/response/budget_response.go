package response

import (
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"time"
)

type BudgetItemResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	StockItemID string `json:"stock_item_id,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type BudgetResponse struct {
	ID              string               `json:"id"`
	Status          string               `json:"status"`
	ServiceOrderID  string               `json:"service_order_id"`
	ClientID        string               `json:"client_id"`
	ValidityPeriod  int                  `json:"validity_period"`
	Expired         bool                 `json:"expired"`
	Items           []BudgetItemResponse `json:"items"`
	Total           string               `json:"total"`
	SentDate        *time.Time           `json:"sent_date,omitempty"`
	ApprovalDate    *time.Time           `json:"approval_date,omitempty"`
	RejectionDate   *time.Time           `json:"rejection_date,omitempty"`
	StockConsumedAt *time.Time           `json:"stock_consumed_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// BudgetTransitionResponse is returned by send/approve/reject.
type BudgetTransitionResponse struct {
	Budget       BudgetResponse        `json:"budget"`
	ServiceOrder *ServiceOrderResponse `json:"service_order,omitempty"`
	Cascade      CascadeResponse       `json:"cascade"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			Type:        string(it.Type),
			StockItemID: it.StockItemID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Subtotal:    it.Subtotal().StringFixed(2),
		})
	}
	return BudgetResponse{
		ID:              b.ID,
		Status:          string(b.Status),
		ServiceOrderID:  b.ServiceOrderID,
		ClientID:        b.ClientID,
		ValidityPeriod:  b.ValidityPeriod,
		Expired:         b.IsExpired(),
		Items:           items,
		Total:           b.Total().StringFixed(2),
		SentDate:        b.SentDate,
		ApprovalDate:    b.ApprovalDate,
		RejectionDate:   b.RejectionDate,
		StockConsumedAt: b.StockConsumedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBudgetResult(r usecase.BudgetResult) BudgetTransitionResponse {
	out := BudgetTransitionResponse{Budget: FromBudget(r.Budget), Cascade: FromCascade(r.Cascade)}
	if r.ServiceOrder.ID != "" {
		so := FromServiceOrder(r.ServiceOrder)
		out.ServiceOrder = &so
	}
	return out
}
