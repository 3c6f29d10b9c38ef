package response

import (
	"errors"
	"testing"
	"time"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromBudgetResult(t *testing.T) {
	sent := time.Now().UTC()
	b := entities.Budget{
		ID:             "bud-1",
		Status:         entities.BudgetStatusSent,
		ServiceOrderID: "os-1",
		ValidityPeriod: 15,
		SentDate:       &sent,
		Items: []entities.BudgetItem{
			{ID: "i-1", Type: entities.BudgetItemTypeService, Description: "Labour", Quantity: 1, UnitPrice: decimal.RequireFromString("80")},
			{ID: "i-2", Type: entities.BudgetItemTypeStockItem, StockItemID: "stk-1", Description: "Oil", Quantity: 2, UnitPrice: decimal.RequireFromString("35.9")},
		},
	}

	t.Run("applied cascade carries the order", func(t *testing.T) {
		res := FromBudgetResult(usecase.BudgetResult{
			Budget:       b,
			ServiceOrder: entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusAwaitingApproval},
			Cascade:      usecase.CascadeOutcome{Attempted: true, Applied: true, TargetID: "os-1", From: "IN_DIAGNOSIS", To: "AWAITING_APPROVAL"},
		})
		if res.Budget.Total != "151.80" {
			t.Fatalf("expected total 151.80, got %s", res.Budget.Total)
		}
		if len(res.Budget.Items) != 2 || res.Budget.Items[1].Subtotal != "71.80" {
			t.Fatalf("unexpected items: %+v", res.Budget.Items)
		}
		if res.Budget.Expired {
			t.Fatalf("budget sent now must not be expired")
		}
		if res.ServiceOrder == nil || res.ServiceOrder.Status != "AWAITING_APPROVAL" {
			t.Fatalf("unexpected service order: %+v", res.ServiceOrder)
		}
		if res.Cascade.Outcome != "applied" {
			t.Fatalf("expected applied, got %s", res.Cascade.Outcome)
		}
	})

	t.Run("failed cascade exposes the error", func(t *testing.T) {
		res := FromBudgetResult(usecase.BudgetResult{
			Budget:  b,
			Cascade: usecase.CascadeOutcome{Attempted: true, TargetID: "os-1", To: "AWAITING_APPROVAL", Err: errors.New("boom")},
		})
		if res.ServiceOrder != nil {
			t.Fatalf("expected no service order, got %+v", res.ServiceOrder)
		}
		if res.Cascade.Outcome != "failed" || res.Cascade.Error != "boom" {
			t.Fatalf("unexpected cascade: %+v", res.Cascade)
		}
	})
}

func TestFromStockItem(t *testing.T) {
	res := FromStockItem(entities.StockItem{ID: "stk-1", SKU: "OIL", CurrentStock: 2, MinStockLevel: 5, UnitCost: decimal.RequireFromString("20")})
	if !res.BelowMinimum {
		t.Fatalf("expected below minimum: %+v", res)
	}
	if res.UnitCost != "20.00" || res.SalePrice != "0.00" {
		t.Fatalf("unexpected prices: %+v", res)
	}

	list := FromStockMovements(nil)
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestFromServiceOrder_FinalFlag(t *testing.T) {
	res := FromServiceOrder(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusDelivered})
	if !res.Final {
		t.Fatalf("expected delivered order to be final")
	}
	res = FromServiceOrder(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusFinished})
	if res.Final {
		t.Fatalf("expected finished order not to be final")
	}
}
