package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	stockItemsSKUIndex       = "sku-index"
	stockMovementsStockIndex = "stock_id-index"

	cancellationConditionalCheckFailed = "ConditionalCheckFailed"
)

type stockItemItem struct {
	ID            string `dynamodbav:"id"`
	SKU           string `dynamodbav:"sku"`
	Name          string `dynamodbav:"name"`
	CurrentStock  int    `dynamodbav:"current_stock"`
	MinStockLevel int    `dynamodbav:"min_stock_level"`
	UnitCost      string `dynamodbav:"unit_cost"`
	SalePrice     string `dynamodbav:"sale_price"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type stockMovementItem struct {
	ID        string `dynamodbav:"id"`
	StockID   string `dynamodbav:"stock_id"`
	Type      string `dynamodbav:"type"`
	Quantity  int    `dynamodbav:"quantity"`
	Reason    string `dynamodbav:"reason,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// StockItemDynamoRepository persists stock items and their movement ledger.
//
// Table requirements:
//   - items table, PK: id (string); GSI: sku-index (PK: sku)
//   - movements table, PK: id (string); GSI: stock_id-index (PK: stock_id)
//
// ApplyMovement writes the counter update and the ledger entry in one transaction. The
// update is guarded by current_stock >= quantity for OUT movements and the ledger put by
// attribute_not_exists(id), so a movement is applied at most once.
type StockItemDynamoRepository struct {
	ddb            DynamoAPI
	itemsTable     string
	movementsTable string
}

var _ interfaces.IStockItemRepository = (*StockItemDynamoRepository)(nil)

func NewStockItemDynamoRepository(ddb DynamoAPI, itemsTable, movementsTable string) *StockItemDynamoRepository {
	return &StockItemDynamoRepository{ddb: ddb, itemsTable: itemsTable, movementsTable: movementsTable}
}

func (r *StockItemDynamoRepository) Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error) {
	ok, err := putItem(ctx, r.ddb, r.itemsTable, toStockItemItem(item), conditionNew)
	if err != nil {
		return entities.StockItem{}, err
	}
	if !ok {
		return entities.StockItem{}, ErrAlreadyExists
	}
	return item, nil
}

func (r *StockItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.StockItem, error) {
	it, ok, err := getItem[stockItemItem](ctx, r.ddb, r.itemsTable, id)
	if err != nil || !ok {
		return entities.StockItem{}, err
	}
	return fromStockItemItem(it), nil
}

func (r *StockItemDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.StockItem, error) {
	items, err := queryIndex[stockItemItem](ctx, r.ddb, r.itemsTable, stockItemsSKUIndex, "sku", sku)
	if err != nil || len(items) == 0 {
		return entities.StockItem{}, err
	}
	return fromStockItemItem(items[0]), nil
}

func (r *StockItemDynamoRepository) ApplyMovement(ctx context.Context, movement entities.StockMovement) (entities.StockItem, error) {
	mv, err := attributevalue.MarshalMap(toStockMovementItem(movement))
	if err != nil {
		return entities.StockItem{}, err
	}
	minStock := 0
	if movement.Type == entities.MovementTypeOut {
		minStock = movement.Quantity
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.itemsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: movement.StockID},
					},
					UpdateExpression:    aws.String("SET #stock = #stock + :delta, #updated_at = :updated_at"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :min"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#stock":      "current_stock",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":delta":      &types.AttributeValueMemberN{Value: strconv.Itoa(movement.SignedQuantity())},
						":min":        &types.AttributeValueMemberN{Value: strconv.Itoa(minStock)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(movement.CreatedAt)},
					},
					ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.movementsTable),
					Item:                mv,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if !errors.As(err, &tce) {
			return entities.StockItem{}, err
		}
		return r.resolveCancellation(ctx, movement, tce.CancellationReasons, err)
	}
	return r.GetByID(ctx, movement.StockID)
}

// resolveCancellation maps the per-item cancellation reasons of a failed transaction.
func (r *StockItemDynamoRepository) resolveCancellation(ctx context.Context, movement entities.StockMovement, reasons []types.CancellationReason, cause error) (entities.StockItem, error) {
	if len(reasons) > 1 && aws.ToString(reasons[1].Code) == cancellationConditionalCheckFailed {
		return r.GetByID(ctx, movement.StockID)
	}
	if len(reasons) > 0 && aws.ToString(reasons[0].Code) == cancellationConditionalCheckFailed {
		if len(reasons[0].Item) == 0 {
			return entities.StockItem{}, nil
		}
		var old stockItemItem
		if err := attributevalue.UnmarshalMap(reasons[0].Item, &old); err != nil {
			return entities.StockItem{}, err
		}
		return entities.StockItem{}, &entities.InsufficientStockError{
			StockID:   movement.StockID,
			Available: old.CurrentStock,
			Requested: movement.Quantity,
		}
	}
	return entities.StockItem{}, cause
}

func (r *StockItemDynamoRepository) ListMovements(ctx context.Context, stockID string) ([]entities.StockMovement, error) {
	items, err := queryIndex[stockMovementItem](ctx, r.ddb, r.movementsTable, stockMovementsStockIndex, "stock_id", stockID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StockMovement, 0, len(items))
	for _, it := range items {
		out = append(out, fromStockMovementItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func toStockItemItem(s entities.StockItem) stockItemItem {
	return stockItemItem{
		ID:            s.ID,
		SKU:           s.SKU,
		Name:          s.Name,
		CurrentStock:  s.CurrentStock,
		MinStockLevel: s.MinStockLevel,
		UnitCost:      s.UnitCost.String(),
		SalePrice:     s.SalePrice.String(),
		CreatedAt:     formatTime(s.CreatedAt),
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromStockItemItem(it stockItemItem) entities.StockItem {
	unitCost, _ := decimal.NewFromString(it.UnitCost)
	salePrice, _ := decimal.NewFromString(it.SalePrice)
	return entities.StockItem{
		ID:            it.ID,
		SKU:           it.SKU,
		Name:          it.Name,
		CurrentStock:  it.CurrentStock,
		MinStockLevel: it.MinStockLevel,
		UnitCost:      unitCost,
		SalePrice:     salePrice,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toStockMovementItem(m entities.StockMovement) stockMovementItem {
	return stockMovementItem{
		ID:        m.ID,
		StockID:   m.StockID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func fromStockMovementItem(it stockMovementItem) entities.StockMovement {
	return entities.StockMovement{
		ID:        it.ID,
		StockID:   it.StockID,
		Type:      entities.MovementType(it.Type),
		Quantity:  it.Quantity,
		Reason:    it.Reason,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
