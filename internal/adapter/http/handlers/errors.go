package handlers

import (
	"errors"
	request "mecanica_xpto_workflow/internal/adapter/http/dto/request"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg"
	"mecanica_xpto_workflow/pkg/retry"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapError turns use case and domain errors into the HTTP error shape. Typed domain
// errors keep their message in the details of 4xx responses.
func mapError(err error) *pkg.AppError {
	var exhausted *retry.RetryableError
	if errors.As(err, &exhausted) && exhausted.Exhausted() {
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Storage temporarily unavailable, try again later", err, http.StatusServiceUnavailable)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidOrigin),
		errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidServiceExecutionID),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidStockID),
		errors.Is(err, usecase.ErrInvalidStockItem),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest),
		errors.Is(err, request.ErrInvalidServiceOrderStatus),
		errors.Is(err, request.ErrInvalidBudgetItemType),
		errors.Is(err, request.ErrInvalidMovementType),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidMovementType),
		errors.Is(err, entities.ErrInvalidBudgetItem),
		errors.Is(err, entities.ErrInvalidValidityPeriod),
		errors.Is(err, entities.ErrInvalidActualHours),
		errors.Is(err, entities.ErrMissingReason),
		errors.Is(err, entities.ErrUnknownStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceExecutionNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_EXECUTION_NOT_FOUND", "Service execution not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBudgetExpired):
		return pkg.NewDomainError("BUDGET_EXPIRED", "Budget validity period has elapsed", err, http.StatusGone)
	case errors.Is(err, entities.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidBudgetStatus):
		return pkg.NewDomainError("INVALID_BUDGET_STATUS", "Budget status does not allow this operation", err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidServiceOrderStatusForBudgetItem):
		return pkg.NewDomainError("INVALID_SERVICE_ORDER_STATUS", "Service order status does not allow budget items", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceOrderNotReadyForBudget),
		errors.Is(err, usecase.ErrServiceOrderNotReadyForExecution):
		return pkg.NewDomainError("INVALID_SERVICE_ORDER_STATUS", "Service order status does not allow this operation", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOpenBudgetExists),
		errors.Is(err, usecase.ErrActiveExecutionExists),
		errors.Is(err, usecase.ErrBudgetStockAlreadyConsumed),
		errors.Is(err, usecase.ErrDuplicateSKU):
		return pkg.NewDomainError("CONFLICT", "Conflicting state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_APPROVED", "Budget not approved", http.StatusConflict)
	case errors.Is(err, interfaces.ErrLockNotObtained):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_BUSY", "Service order is being updated, try again", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource changed during the request, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
