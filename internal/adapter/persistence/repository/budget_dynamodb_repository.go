package repository

import (
	"context"
	"sort"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const budgetsServiceOrderIndex = "service_order_id-index"

type budgetLineItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	StockItemID string `dynamodbav:"stock_item_id,omitempty"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type budgetItem struct {
	ID              string           `dynamodbav:"id"`
	Status          string           `dynamodbav:"status"`
	ValidityPeriod  int              `dynamodbav:"validity_period"`
	SentDate        string           `dynamodbav:"sent_date,omitempty"`
	ApprovalDate    string           `dynamodbav:"approval_date,omitempty"`
	RejectionDate   string           `dynamodbav:"rejection_date,omitempty"`
	StockConsumedAt string           `dynamodbav:"stock_consumed_at,omitempty"`
	ServiceOrderID  string           `dynamodbav:"service_order_id"`
	ClientID        string           `dynamodbav:"client_id"`
	Items           []budgetLineItem `dynamodbav:"items"`
	CreatedAt       string           `dynamodbav:"created_at"`
	UpdatedAt       string           `dynamodbav:"updated_at"`
	Version         int64            `dynamodbav:"version"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB. Budget lines are stored
// inline as a list; prices are decimal strings.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
type BudgetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toBudgetItem(b), conditionNew)
	if err != nil {
		return entities.Budget{}, err
	}
	if !ok {
		return entities.Budget{}, ErrAlreadyExists
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	it, ok, err := getItem[budgetItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Save(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	next := b
	next.Version = b.Version + 1
	ok, err := putVersioned(ctx, r.ddb, r.tableName, toBudgetItem(next), b.Version)
	if err != nil || !ok {
		return entities.Budget{}, err
	}
	return next, nil
}

func (r *BudgetDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.Budget, error) {
	items, err := queryIndex[budgetItem](ctx, r.ddb, r.tableName, budgetsServiceOrderIndex, "service_order_id", serviceOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(items))
	for _, it := range items {
		out = append(out, fromBudgetItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	lines := make([]budgetLineItem, 0, len(b.Items))
	for _, i := range b.Items {
		lines = append(lines, budgetLineItem{
			ID:          i.ID,
			Type:        string(i.Type),
			StockItemID: i.StockItemID,
			Description: i.Description,
			Quantity:    i.Quantity,
			UnitPrice:   i.UnitPrice.String(),
		})
	}
	return budgetItem{
		ID:              b.ID,
		Status:          string(b.Status),
		ValidityPeriod:  b.ValidityPeriod,
		SentDate:        formatTimePtr(b.SentDate),
		ApprovalDate:    formatTimePtr(b.ApprovalDate),
		RejectionDate:   formatTimePtr(b.RejectionDate),
		StockConsumedAt: formatTimePtr(b.StockConsumedAt),
		ServiceOrderID:  b.ServiceOrderID,
		ClientID:        b.ClientID,
		Items:           lines,
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
		Version:         b.Version,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	lines := make([]entities.BudgetItem, 0, len(it.Items))
	for _, l := range it.Items {
		price, _ := decimal.NewFromString(l.UnitPrice)
		lines = append(lines, entities.BudgetItem{
			ID:          l.ID,
			Type:        entities.BudgetItemType(l.Type),
			StockItemID: l.StockItemID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   price,
		})
	}
	return entities.Budget{
		ID:              it.ID,
		Status:          entities.BudgetStatus(it.Status),
		ValidityPeriod:  it.ValidityPeriod,
		SentDate:        parseTimePtr(it.SentDate),
		ApprovalDate:    parseTimePtr(it.ApprovalDate),
		RejectionDate:   parseTimePtr(it.RejectionDate),
		StockConsumedAt: parseTimePtr(it.StockConsumedAt),
		ServiceOrderID:  it.ServiceOrderID,
		ClientID:        it.ClientID,
		Items:           lines,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
}
