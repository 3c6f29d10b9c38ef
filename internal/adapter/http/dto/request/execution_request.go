package request

type AssignExecutionRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
	MechanicID     string `json:"mechanic_id" binding:"required"`
}

type CompleteExecutionRequest struct {
	ActualHours float64 `json:"actual_hours"`
	Notes       string  `json:"notes"`
}
