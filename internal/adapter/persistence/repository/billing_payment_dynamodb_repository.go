package repository

import (
	"context"
	"sort"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const paymentsBudgetIDIndex = "budget_id-index"

type billingPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	BudgetID           string                 `dynamodbav:"budget_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type BillingPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toBillingPaymentItem(p), conditionNew)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if !ok {
		return entities.BillingPayment{}, ErrAlreadyExists
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	it, ok, err := getItem[billingPaymentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

func (r *BillingPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BillingPayment, error) {
	items, err := queryIndex[billingPaymentItem](ctx, r.ddb, r.tableName, paymentsBudgetIDIndex, "budget_id", budgetID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillingPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromBillingPaymentItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:                 p.ID,
		BudgetID:           p.BudgetID,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.BillingPayment{
		ID:                 it.ID,
		BudgetID:           it.BudgetID,
		Amount:             amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
