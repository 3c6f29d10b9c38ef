package response

import (
	"mecanica_xpto_workflow/internal/domain/entities"
	"time"
)

type BillingPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	BudgetID    string    `json:"budget_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:          p.ID,
		BudgetID:           p.BudgetID,
		Amount:             p.Amount.StringFixed(2),
		PaymentDate:        p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
