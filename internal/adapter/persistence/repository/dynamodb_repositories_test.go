package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestServiceOrderDynamoRepository_CreateGetSave(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "service_orders")
	delivered := fixedTime.Add(48 * time.Hour)
	o := entities.ServiceOrder{
		ID:          "os-1",
		Status:      entities.ServiceOrderStatusReceived,
		RequestDate: fixedTime,
		ClientID:    "cli-1",
		VehicleID:   "veh-1",
		Notes:       "noise on brakes",
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}

	_, err := repo.Create(ctx, o)
	require.NoError(t, err)
	_, err = repo.Create(ctx, o)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	o.Status = entities.ServiceOrderStatusDelivered
	o.DeliveryDate = &delivered
	_, err = repo.Save(ctx, o)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)
	assert.Equal(t, entities.ServiceOrderStatusDelivered, got.Status)
	require.NotNil(t, got.DeliveryDate)
	assert.True(t, delivered.Equal(*got.DeliveryDate))
	assert.Equal(t, "noise on brakes", got.Notes)

	missing, err := repo.Save(ctx, entities.ServiceOrder{ID: "os-404"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	none, err := repo.GetByID(ctx, "os-404")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestDynamoRepositories_SaveChecksVersion(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()

	t.Run("budget", func(t *testing.T) {
		repo := NewBudgetDynamoRepository(ddb, "budgets")
		_, err := repo.Create(ctx, entities.Budget{ID: "b-1", Status: entities.BudgetStatusSent, ServiceOrderID: "os-1"})
		require.NoError(t, err)

		loaded, err := repo.GetByID(ctx, "b-1")
		require.NoError(t, err)
		approved := loaded
		approved.Status = entities.BudgetStatusApproved
		saved, err := repo.Save(ctx, approved)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)

		rejected := loaded
		rejected.Status = entities.BudgetStatusRejected
		_, err = repo.Save(ctx, rejected)
		assert.ErrorIs(t, err, interfaces.ErrConcurrentUpdate)

		got, err := repo.GetByID(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, entities.BudgetStatusApproved, got.Status)
		assert.Equal(t, int64(1), got.Version)

		missing, err := repo.Save(ctx, entities.Budget{ID: "b-404"})
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("service order written without a version", func(t *testing.T) {
		ddb.table("service_orders")["os-legacy"] = record{
			"id":     &types.AttributeValueMemberS{Value: "os-legacy"},
			"status": &types.AttributeValueMemberS{Value: string(entities.ServiceOrderStatusReceived)},
		}
		repo := NewServiceOrderDynamoRepository(ddb, "service_orders")
		o, err := repo.GetByID(ctx, "os-legacy")
		require.NoError(t, err)
		require.NoError(t, o.MarkInDiagnosis())

		saved, err := repo.Save(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.Version)
		_, err = repo.Save(ctx, o)
		assert.ErrorIs(t, err, interfaces.ErrConcurrentUpdate)
	})

	t.Run("execution", func(t *testing.T) {
		repo := NewServiceExecutionDynamoRepository(ddb, "executions")
		_, err := repo.Create(ctx, entities.ServiceExecution{ID: "ex-1", Status: entities.ServiceExecutionStatusAssigned, ServiceOrderID: "os-1"})
		require.NoError(t, err)
		e, err := repo.GetByID(ctx, "ex-1")
		require.NoError(t, err)

		_, err = repo.Save(ctx, e)
		require.NoError(t, err)
		_, err = repo.Save(ctx, e)
		assert.ErrorIs(t, err, interfaces.ErrConcurrentUpdate)
	})
}

func TestBudgetDynamoRepository_ListByServiceOrderIDReadsAllPages(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	repo := NewBudgetDynamoRepository(ddb, "budgets")

	for i, id := range []string{"b-2", "b-1", "b-3"} {
		_, err := repo.Create(ctx, entities.Budget{
			ID:             id,
			Status:         entities.BudgetStatusGenerated,
			ServiceOrderID: "os-1",
			CreatedAt:      fixedTime.Add(time.Duration(i) * time.Minute),
			Items: []entities.BudgetItem{
				{ID: "i-1", Type: entities.BudgetItemTypeService, Description: "labor", Quantity: 2, UnitPrice: decimal.RequireFromString("120.50")},
			},
		})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, entities.Budget{ID: "other", ServiceOrderID: "os-2"})
	require.NoError(t, err)

	list, err := repo.ListByServiceOrderID(ctx, "os-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"b-2", "b-1", "b-3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, 3, ddb.queryCalls)
	assert.True(t, decimal.RequireFromString("241").Equal(list[0].Total()))
}

func newStockRepo(t *testing.T, ddb *fakeDynamo, stock int) *StockItemDynamoRepository {
	t.Helper()
	repo := NewStockItemDynamoRepository(ddb, "stock_items", "stock_movements")
	_, err := repo.Create(context.Background(), entities.StockItem{
		ID:           "stk-1",
		SKU:          "OIL-5W30",
		CurrentStock: stock,
		UnitCost:     decimal.RequireFromString("20"),
		SalePrice:    decimal.RequireFromString("35.90"),
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	})
	require.NoError(t, err)
	return repo
}

func TestStockItemDynamoRepository_ApplyMovementTransaction(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := newStockRepo(t, ddb, 5)

	item, err := repo.ApplyMovement(ctx, entities.StockMovement{
		ID: "mv-1", StockID: "stk-1", Type: entities.MovementTypeOut, Quantity: 3, Reason: "budget:b-1", CreatedAt: fixedTime,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, item.CurrentStock)

	require.Len(t, ddb.lastTransact.TransactItems, 2)
	update := ddb.lastTransact.TransactItems[0].Update
	require.NotNil(t, update)
	assert.Equal(t, "attribute_exists(#id) AND #stock >= :min", aws.ToString(update.ConditionExpression))
	assert.Equal(t, "-3", update.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, "3", update.ExpressionAttributeValues[":min"].(*types.AttributeValueMemberN).Value)
	assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, update.ReturnValuesOnConditionCheckFailure)
	put := ddb.lastTransact.TransactItems[1].Put
	require.NotNil(t, put)
	assert.Equal(t, "stock_movements", aws.ToString(put.TableName))

	movements, err := repo.ListMovements(ctx, "stk-1")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "budget:b-1", movements[0].Reason)

	bySKU, err := repo.GetBySKU(ctx, "OIL-5W30")
	require.NoError(t, err)
	assert.Equal(t, "stk-1", bySKU.ID)
	assert.True(t, decimal.RequireFromString("35.90").Equal(bySKU.SalePrice))
}

func TestStockItemDynamoRepository_InMovementHasNoFloor(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newStockRepo(t, ddb, 0)

	item, err := repo.ApplyMovement(context.Background(), entities.StockMovement{
		ID: "mv-1", StockID: "stk-1", Type: entities.MovementTypeIn, Quantity: 4, CreatedAt: fixedTime,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, item.CurrentStock)
	assert.Equal(t, "0", ddb.lastTransact.TransactItems[0].Update.ExpressionAttributeValues[":min"].(*types.AttributeValueMemberN).Value)
}

func ccf() *string { return aws.String(cancellationConditionalCheckFailed) }

func TestStockItemDynamoRepository_CancellationReasons(t *testing.T) {
	out := entities.StockMovement{ID: "mv-9", StockID: "stk-1", Type: entities.MovementTypeOut, Quantity: 4, CreatedAt: fixedTime}
	unavailable := errors.New("service unavailable")

	tests := []struct {
		name      string
		err       error
		wantStock int
		wantID    string
		check     func(t *testing.T, err error)
	}{
		{
			name: "guard failed returns available stock",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: ccf(), Item: record{"id": &types.AttributeValueMemberS{Value: "stk-1"}, "current_stock": &types.AttributeValueMemberN{Value: "2"}}},
				{Code: aws.String("None")},
			}},
			check: func(t *testing.T, err error) {
				var stockErr *entities.InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, 2, stockErr.Available)
				assert.Equal(t, 4, stockErr.Requested)
				assert.ErrorIs(t, err, entities.ErrInsufficientStock)
			},
		},
		{
			name: "missing item returns zero value",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: ccf()},
				{Code: aws.String("None")},
			}},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "movement already recorded returns current item",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: ccf()},
			}},
			wantStock: 1,
			wantID:    "stk-1",
			check:     func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name: "other errors pass through",
			err:  unavailable,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, unavailable)
			},
		},
		{
			name: "conflicts pass through",
			err: &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: aws.String("TransactionConflict")},
				{Code: aws.String("None")},
			}},
			check: func(t *testing.T, err error) {
				var tce *types.TransactionCanceledException
				assert.ErrorAs(t, err, &tce)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddb := newFakeDynamo()
			repo := newStockRepo(t, ddb, 1)
			ddb.transactErr = tt.err

			item, err := repo.ApplyMovement(context.Background(), out)

			tt.check(t, err)
			assert.Equal(t, tt.wantID, item.ID)
			assert.Equal(t, tt.wantStock, item.CurrentStock)
		})
	}
}

func TestBillingPaymentDynamoRepository_ListByBudgetID(t *testing.T) {
	ctx := context.Background()
	repo := NewBillingPaymentDynamoRepository(newFakeDynamo(), "billing_payments")

	for i, id := range []string{"p-b", "p-a"} {
		_, err := repo.Create(ctx, entities.BillingPayment{
			ID:                 id,
			BudgetID:           "b-1",
			Amount:             decimal.RequireFromString("361.00"),
			Date:               fixedTime.Add(time.Duration(i) * time.Hour),
			Status:             entities.PaymentStatusApproved,
			ProviderPayloadRaw: []byte(`{"status":"approved"}`),
			ProviderPayload:    map[string]interface{}{"status": "approved"},
		})
		require.NoError(t, err)
	}

	list, err := repo.ListByBudgetID(ctx, "b-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p-b", list[0].ID)
	assert.True(t, decimal.RequireFromString("361").Equal(list[0].Amount))
	assert.Equal(t, "approved", list[0].ProviderPayload["status"])
	assert.JSONEq(t, `{"status":"approved"}`, string(list[0].ProviderPayloadRaw))

	got, err := repo.GetByID(ctx, "p-a")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
}
