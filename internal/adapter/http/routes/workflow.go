package routes

import (
	"mecanica_xpto_workflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathBudgets       = "/budgets"
	PathExecutions    = "/executions"
	PathStockItems    = "/stock-items"
	PathPayments      = "/payments"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	if h == nil {
		return
	}
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.CreateServiceOrder)
		orders.GET("/:id", h.GetServiceOrder)
		orders.PATCH("/:id/receive", h.ReceiveServiceOrder)
		orders.PATCH("/:id/diagnose", h.DiagnoseServiceOrder)
		orders.PATCH("/:id/deliver", h.DeliverServiceOrder)
		orders.PATCH("/:id/reject", h.RejectServiceOrder)
		orders.PATCH("/:id/cancel", h.CancelServiceOrder)
		// Manual correction after a skipped or failed cascade.
		orders.PATCH("/:id/status", h.UpdateServiceOrderStatus)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	if h == nil {
		return
	}
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.CreateBudget)
		budgets.GET("/:id", h.GetBudget)
		budgets.POST("/:id/items", h.AddBudgetItem)
		budgets.PATCH("/:id/send", h.SendBudget)
		budgets.PATCH("/:id/receive", h.ReceiveBudget)
		budgets.PATCH("/:id/approve", h.ApproveBudget)
		budgets.PATCH("/:id/reject", h.RejectBudget)
		budgets.POST("/:id/consume-stock", h.ConsumeBudgetStock)
	}
}

func addExecutionRoutes(rg *gin.RouterGroup, h *handlers.ExecutionHandler) {
	if h == nil {
		return
	}
	executions := rg.Group(PathExecutions)
	{
		executions.POST("", h.AssignExecution)
		executions.GET("/:id", h.GetExecution)
		executions.PATCH("/:id/start", h.StartExecution)
		executions.PATCH("/:id/complete", h.CompleteExecution)
	}
}

func addStockRoutes(rg *gin.RouterGroup, h *handlers.StockHandler) {
	if h == nil {
		return
	}
	stock := rg.Group(PathStockItems)
	{
		stock.POST("", h.CreateStockItem)
		stock.GET("/:id", h.GetStockItem)
		stock.GET("/:id/movements", h.ListMovements)
		stock.POST("/:id/movements", h.RecordMovement)
		stock.POST("/:id/decrease", h.DecreaseStock)
		stock.GET("/:id/availability", h.CheckAvailability)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	if h == nil {
		return
	}
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", h.PayBudget)
		payments.GET("/:budget_id", h.GetLatestPayment)
	}
}
