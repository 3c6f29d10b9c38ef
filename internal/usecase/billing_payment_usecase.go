package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/retry"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBudgetNotApproved              = errors.New("budget not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase charges the client for an approved budget.
//
// The amount always comes from the stored budget total; the caller only provides the
// provider payload (payment method, payer, token).
type IBillingPaymentUseCase interface {
	PayBudget(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo       interfaces.IBillingPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
	retry      *retry.Policy
	opts       options
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway, policy *retry.Policy, opts ...Option) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway, retry: policy, opts: buildOptions("payment", opts)}
}

func (u *BillingPaymentUseCase) PayBudget(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log := u.opts.logger.With().Str("budget_id", strings.TrimSpace(budgetID)).Logger()
	mockMode := u.opts.paymentMock

	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BillingPayment{}, ErrInvalidBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn().Int("payload_len", len(mpPayload)).Msg("invalid payment payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	budget, err := retryDo(ctx, u.retry, "budget.get", func(ctx context.Context) (entities.Budget, error) {
		return u.budgetRepo.GetByID(ctx, budgetID)
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if budget.ID == "" {
		return entities.BillingPayment{}, ErrBudgetNotFound
	}
	if budget.Status != entities.BudgetStatusApproved {
		log.Info().Str("status", string(budget.Status)).Msg("budget not approved for payment")
		return entities.BillingPayment{}, ErrBudgetNotApproved
	}
	amount := budget.Total()

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn().Msg("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		ensurePayerType(reqMap)
		if !hasPayer(reqMap) {
			log.Warn().Msg("missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = budgetID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Budget %s", budgetID)
	}
	// The stored budget is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Info().Msg("payment gateway mock enabled")
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		// Provider calls are not idempotent and are never retried.
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Error().Err(err).Msg("payment gateway failed")
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Msg("provider response is not a json object")
	}

	p := entities.BillingPayment{
		ID:                 providerPaymentID,
		BudgetID:           budgetID,
		Amount:             amount,
		Date:               entities.Now(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := retryDo(ctx, u.retry, "payment.create", func(ctx context.Context) (entities.BillingPayment, error) {
		return u.repo.Create(ctx, p)
	})
	if err != nil {
		log.Error().Err(err).Str("payment_id", p.ID).Msg("payment accepted by provider but not stored")
		return entities.BillingPayment{}, err
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).
		Str("amount", created.Amount.StringFixed(2)).Msg("budget payment created")
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := retryDo(ctx, u.retry, "payment.get", func(ctx context.Context) (entities.BillingPayment, error) {
		return u.repo.GetByID(ctx, id)
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidBudgetID
	}
	return retryDo(ctx, u.retry, "payment.list_by_budget", func(ctx context.Context) ([]entities.BillingPayment, error) {
		return u.repo.ListByBudgetID(ctx, budgetID)
	})
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	now := entities.Now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = resp["date_created"]
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerType(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	default:
		return err
	}
}
