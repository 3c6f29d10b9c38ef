package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the budget payment route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas; the
// amount always comes from the budget total.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
