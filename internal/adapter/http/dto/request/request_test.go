package request

import (
	"encoding/json"
	"errors"
	"testing"

	"mecanica_xpto_workflow/internal/domain/entities"
)

func TestCreateServiceOrderRequest_ToInput(t *testing.T) {
	in := CreateServiceOrderRequest{ClientID: "cli-1", VehicleID: "veh-1", Origin: " employee "}.ToInput()
	if in.Origin != entities.ServiceOrderOriginEmployee {
		t.Fatalf("expected EMPLOYEE origin, got %q", in.Origin)
	}

	in = CreateServiceOrderRequest{ClientID: "cli-1", VehicleID: "veh-1"}.ToInput()
	if in.Origin != "" {
		t.Fatalf("expected empty origin to be left for the use case default, got %q", in.Origin)
	}
}

func TestUpdateServiceOrderStatusRequest_ResolveStatus(t *testing.T) {
	status, err := UpdateServiceOrderStatusRequest{Status: "in_diagnosis"}.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.ServiceOrderStatusInDiagnosis {
		t.Fatalf("expected IN_DIAGNOSIS, got %q", status)
	}

	if _, err := (UpdateServiceOrderStatusRequest{Status: "LOST"}).ResolveStatus(); !errors.Is(err, ErrInvalidServiceOrderStatus) {
		t.Fatalf("expected ErrInvalidServiceOrderStatus, got %v", err)
	}
}

func TestBudgetItemRequest_ToInput(t *testing.T) {
	var r BudgetItemRequest
	if err := json.Unmarshal([]byte(`{"type":"stock_item","stock_item_id":" stk-1 ","description":"Oil filter","quantity":2,"unit_price":"35.90"}`), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Type != entities.BudgetItemTypeStockItem || in.StockItemID != "stk-1" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.UnitPrice.StringFixed(2) != "35.90" {
		t.Fatalf("expected 35.90, got %s", in.UnitPrice)
	}

	if err := json.Unmarshal([]byte(`{"type":"SERVICE","description":"Labour","quantity":1,"unit_price":120.5}`), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if in, err = r.ToInput(); err != nil || in.UnitPrice.StringFixed(2) != "120.50" {
		t.Fatalf("expected numeric unit price, got %+v err=%v", in, err)
	}

	if _, err := (BudgetItemRequest{Type: "DISCOUNT"}).ToInput(); !errors.Is(err, ErrInvalidBudgetItemType) {
		t.Fatalf("expected ErrInvalidBudgetItemType, got %v", err)
	}
}

func TestStockMovementRequest_ResolveType(t *testing.T) {
	mt, err := StockMovementRequest{Type: "out"}.ResolveType()
	if err != nil || mt != entities.MovementTypeOut {
		t.Fatalf("expected OUT, got %q err=%v", mt, err)
	}
	if _, err := (StockMovementRequest{Type: "ADJUST"}).ResolveType(); !errors.Is(err, ErrInvalidMovementType) {
		t.Fatalf("expected ErrInvalidMovementType, got %v", err)
	}
}
