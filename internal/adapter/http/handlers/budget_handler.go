package handlers

import (
	"context"
	request "mecanica_xpto_workflow/internal/adapter/http/dto/request"
	response "mecanica_xpto_workflow/internal/adapter/http/dto/response"
	"mecanica_xpto_workflow/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BudgetHandler exposes the budget lifecycle. Send, approve and reject also report the
// service order cascade; a cascade that did not apply still answers 200.
type BudgetHandler struct {
	coordinator usecase.IWorkflowCoordinator
}

func NewBudgetHandler(coordinator usecase.IWorkflowCoordinator) *BudgetHandler {
	return &BudgetHandler{coordinator: coordinator}
}

// CreateBudget godoc
// @Summary Create a budget for a service order in diagnosis
// @Tags budgets
// @Accept json
// @Produce json
// @Param payload body request.CreateBudgetRequest true "Budget"
// @Success 201 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	budget, err := h.coordinator.CreateBudget(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// GetBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.coordinator.GetBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// AddBudgetItem godoc
// @Summary Add a line to a generated budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param payload body request.BudgetItemRequest true "Item"
// @Success 201 {object} response.BudgetResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /budgets/{id}/items [post]
func (h *BudgetHandler) AddBudgetItem(c *gin.Context) {
	var payload request.BudgetItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWithError(c, err)
		return
	}

	budget, err := h.coordinator.AddBudgetItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// SendBudget godoc
// @Summary Send a budget to the client
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetTransitionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /budgets/{id}/send [patch]
func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.transition(c, h.coordinator.SendBudget)
}

// ApproveBudget godoc
// @Summary Approve a sent or received budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetTransitionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 410 {object} pkg.HTTPError
// @Router /budgets/{id}/approve [patch]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.transition(c, h.coordinator.ApproveBudget)
}

// RejectBudget godoc
// @Summary Reject a sent or received budget
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetTransitionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 410 {object} pkg.HTTPError
// @Router /budgets/{id}/reject [patch]
func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.transition(c, h.coordinator.RejectBudget)
}

func (h *BudgetHandler) ReceiveBudget(c *gin.Context) {
	budget, err := h.coordinator.ReceiveBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ConsumeBudgetStock godoc
// @Summary Take the stock lines of an approved budget out of the stock
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} response.BudgetResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /budgets/{id}/consume-stock [post]
func (h *BudgetHandler) ConsumeBudgetStock(c *gin.Context) {
	budget, err := h.coordinator.ConsumeBudgetStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, budgetID string) (usecase.BudgetResult, error),
) {
	res, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetResult(res))
}
