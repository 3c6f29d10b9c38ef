package handlers

import (
	request "mecanica_xpto_workflow/internal/adapter/http/dto/request"
	response "mecanica_xpto_workflow/internal/adapter/http/dto/response"
	"mecanica_xpto_workflow/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ExecutionHandler struct {
	coordinator usecase.IWorkflowCoordinator
}

func NewExecutionHandler(coordinator usecase.IWorkflowCoordinator) *ExecutionHandler {
	return &ExecutionHandler{coordinator: coordinator}
}

// AssignExecution godoc
// @Summary Assign a mechanic to an approved or scheduled service order
// @Tags executions
// @Accept json
// @Produce json
// @Param payload body request.AssignExecutionRequest true "Assignment"
// @Success 201 {object} response.ServiceExecutionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /executions [post]
func (h *ExecutionHandler) AssignExecution(c *gin.Context) {
	var payload request.AssignExecutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	execution, err := h.coordinator.AssignExecution(c.Request.Context(), payload.ServiceOrderID, payload.MechanicID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceExecution(execution))
}

func (h *ExecutionHandler) GetExecution(c *gin.Context) {
	execution, err := h.coordinator.GetExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceExecution(execution))
}

// StartExecution godoc
// @Summary Start an assigned execution
// @Tags executions
// @Produce json
// @Param id path string true "Execution ID"
// @Success 200 {object} response.ExecutionTransitionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /executions/{id}/start [patch]
func (h *ExecutionHandler) StartExecution(c *gin.Context) {
	res, err := h.coordinator.StartExecution(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecutionResult(res))
}

// CompleteExecution godoc
// @Summary Complete an execution in progress
// @Tags executions
// @Accept json
// @Produce json
// @Param id path string true "Execution ID"
// @Param payload body request.CompleteExecutionRequest false "Completion data"
// @Success 200 {object} response.ExecutionTransitionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /executions/{id}/complete [patch]
func (h *ExecutionHandler) CompleteExecution(c *gin.Context) {
	var payload request.CompleteExecutionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWithAppError(c, errInvalidRequest)
			return
		}
	}

	res, err := h.coordinator.CompleteExecution(c.Request.Context(), c.Param("id"), payload.ActualHours, payload.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecutionResult(res))
}
