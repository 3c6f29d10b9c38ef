package handlers

import (
	request "mecanica_xpto_workflow/internal/adapter/http/dto/request"
	response "mecanica_xpto_workflow/internal/adapter/http/dto/response"
	"mecanica_xpto_workflow/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	ledger usecase.IStockLedger
}

func NewStockHandler(ledger usecase.IStockLedger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// CreateStockItem godoc
// @Summary Register a stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param payload body request.CreateStockItemRequest true "Stock item"
// @Success 201 {object} response.StockItemResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /stock-items [post]
func (h *StockHandler) CreateStockItem(c *gin.Context) {
	var payload request.CreateStockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	item, err := h.ledger.CreateStockItem(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStockItem(item))
}

func (h *StockHandler) GetStockItem(c *gin.Context) {
	item, err := h.ledger.GetStockItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStockItem(item))
}

func (h *StockHandler) ListMovements(c *gin.Context) {
	movements, err := h.ledger.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStockMovements(movements))
}

// RecordMovement godoc
// @Summary Record an IN or OUT stock movement
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param payload body request.StockMovementRequest true "Movement"
// @Success 201 {object} response.StockMovementResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /stock-items/{id}/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var payload request.StockMovementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}
	movementType, err := payload.ResolveType()
	if err != nil {
		abortWithError(c, err)
		return
	}

	movement, err := h.ledger.RecordMovement(c.Request.Context(), c.Param("id"), movementType, payload.Quantity, payload.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStockMovement(movement))
}

// DecreaseStock godoc
// @Summary Take a quantity out of the stock
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param payload body request.StockDecreaseRequest true "Quantity"
// @Success 200 {object} response.StockItemResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /stock-items/{id}/decrease [post]
func (h *StockHandler) DecreaseStock(c *gin.Context) {
	var payload request.StockDecreaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	item, err := h.ledger.Decrease(c.Request.Context(), c.Param("id"), payload.Quantity, payload.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStockItem(item))
}

// CheckAvailability godoc
// @Summary Check whether a quantity is available
// @Tags stock
// @Produce json
// @Param id path string true "Stock item ID"
// @Param quantity query int true "Requested quantity"
// @Success 200 {object} entities.StockAvailability
// @Failure 400 {object} pkg.HTTPError
// @Router /stock-items/{id}/availability [get]
func (h *StockHandler) CheckAvailability(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		abortWithAppError(c, errInvalidRequest)
		return
	}

	availability, err := h.ledger.CheckAvailability(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}
