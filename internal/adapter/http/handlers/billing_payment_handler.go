package handlers

import (
	"encoding/json"
	"errors"
	response "mecanica_xpto_workflow/internal/adapter/http/dto/response"
	"mecanica_xpto_workflow/internal/usecase"
	"mecanica_xpto_workflow/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BillingPaymentHandler handles HTTP requests for budget payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	logger   zerolog.Logger
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable body falls
// back to an empty provider payload instead of failing the request.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, logger zerolog.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, logger: logger.With().Str("component", "http").Logger()}
}

// PayBudget godoc
// @Summary Pay an approved budget
// @Description The amount is the budget total; the body carries the Mercado Pago payload, bare or wrapped in mp_payload.
// @Tags payments
// @Accept json
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Param payload body request.BillingPaymentCreateRequest false "Provider payload"
// @Success 200 {object} response.BillingPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /payments/{budget_id} [post]
func (h *BillingPaymentHandler) PayBudget(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log := h.logger.With().Str("budget_id", budgetID).Logger()
	log.Info().Msg("payment request received")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Msg("invalid payment payload")
			abortWithAppError(c, errInvalidRequest)
			return
		}
		log.Warn().Err(err).Msg("payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayBudget(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Error().Err(err).Msg("payment failed")
		abortWithError(c, err)
		return
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment created")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary Latest payment of a budget
// @Tags payments
// @Produce json
// @Param budget_id path string true "Budget ID"
// @Success 200 {object} response.BillingPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /payments/{budget_id} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	budgetID := c.Param("budget_id")

	payments, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(payments) == 0 {
		abortWithAppError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
