package handlers

import (
	"context"
	request "mecanica_xpto_workflow/internal/adapter/http/dto/request"
	response "mecanica_xpto_workflow/internal/adapter/http/dto/response"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler exposes the service order transitions that are not driven by a
// budget or an execution.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary Open a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Param payload body request.CreateServiceOrderRequest true "Service order"
// @Success 201 {object} response.ServiceOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// GetServiceOrder godoc
// @Summary Get a service order
// @Tags service-orders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {object} response.ServiceOrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ReceiveServiceOrder(c *gin.Context) {
	h.transition(c, h.usecase.MarkReceived)
}

func (h *ServiceOrderHandler) DiagnoseServiceOrder(c *gin.Context) {
	h.transition(c, h.usecase.MarkInDiagnosis)
}

func (h *ServiceOrderHandler) DeliverServiceOrder(c *gin.Context) {
	h.transition(c, h.usecase.MarkDelivered)
}

func (h *ServiceOrderHandler) RejectServiceOrder(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

// CancelServiceOrder godoc
// @Summary Cancel a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param payload body request.CancelServiceOrderRequest true "Reason"
// @Success 200 {object} response.ServiceOrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /service-orders/{id}/cancel [patch]
func (h *ServiceOrderHandler) CancelServiceOrder(c *gin.Context) {
	var payload request.CancelServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	h.transition(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.Cancel(ctx, id, payload.Reason)
	})
}

// UpdateServiceOrderStatus godoc
// @Summary Manually set a service order status
// @Description Correction path for cascades that were skipped or failed. The target must be reachable from the current status.
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param payload body request.UpdateServiceOrderStatusRequest true "Target status"
// @Success 200 {object} response.ServiceOrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateServiceOrderStatus(c *gin.Context) {
	var payload request.UpdateServiceOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.transition(c, func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		return h.usecase.UpdateStatus(ctx, id, status, payload.Reason)
	})
}

func (h *ServiceOrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.ServiceOrder, error),
) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
