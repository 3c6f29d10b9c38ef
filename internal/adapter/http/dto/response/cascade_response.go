package response

import "mecanica_xpto_workflow/internal/usecase"

// CascadeResponse reports what happened to the service order after the primary
// transition. Outcome is applied, skipped or failed.
type CascadeResponse struct {
	Outcome        string `json:"outcome"`
	ServiceOrderID string `json:"service_order_id"`
	From           string `json:"from,omitempty"`
	To             string `json:"to"`
	Reason         string `json:"reason,omitempty"`
	Error          string `json:"error,omitempty"`
}

func FromCascade(c usecase.CascadeOutcome) CascadeResponse {
	out := CascadeResponse{
		Outcome:        c.Outcome(),
		ServiceOrderID: c.TargetID,
		From:           c.From,
		To:             c.To,
		Reason:         c.Reason,
	}
	if c.Err != nil {
		out.Error = c.Err.Error()
	}
	return out
}
