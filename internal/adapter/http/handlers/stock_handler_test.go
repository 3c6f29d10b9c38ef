package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"mecanica_xpto_workflow/internal/adapter/http/handlers/mocks"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newStockRouter(t *testing.T) (*gin.Engine, *mocks.MockIStockLedger) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockIStockLedger(ctrl)
	h := NewStockHandler(ledger)

	r := gin.New()
	r.POST("/v1/stock-items", h.CreateStockItem)
	r.GET("/v1/stock-items/:id", h.GetStockItem)
	r.GET("/v1/stock-items/:id/movements", h.ListMovements)
	r.POST("/v1/stock-items/:id/movements", h.RecordMovement)
	r.POST("/v1/stock-items/:id/decrease", h.DecreaseStock)
	r.GET("/v1/stock-items/:id/availability", h.CheckAvailability)
	return r, ledger
}

func TestStockHandler(t *testing.T) {
	t.Run("create duplicate sku", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).Return(entities.StockItem{}, usecase.ErrDuplicateSKU)

		w := serve(r, http.MethodPost, "/v1/stock-items", `{"sku":"OIL","name":"Oil 5W30","initial_stock":10}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().CreateStockItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.CreateStockItemInput) (entities.StockItem, error) {
				if in.SKU != "OIL" || in.InitialStock != 10 || in.UnitCost.StringFixed(2) != "20.00" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.StockItem{ID: "stk-1", SKU: in.SKU, CurrentStock: in.InitialStock, UnitCost: in.UnitCost}, nil
			})

		w := serve(r, http.MethodPost, "/v1/stock-items", `{"sku":" OIL ","name":"Oil 5W30","initial_stock":10,"unit_cost":"20"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("record movement with bad type", func(t *testing.T) {
		r, _ := newStockRouter(t)
		w := serve(r, http.MethodPost, "/v1/stock-items/stk-1/movements", `{"type":"ADJUST","quantity":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record movement", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().RecordMovement(gomock.Any(), "stk-1", entities.MovementTypeIn, 5, "supplier delivery").
			Return(entities.StockMovement{ID: "m-1", StockID: "stk-1", Type: entities.MovementTypeIn, Quantity: 5}, nil)

		w := serve(r, http.MethodPost, "/v1/stock-items/stk-1/movements", `{"type":"in","quantity":5,"reason":"supplier delivery"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("decrease beyond stock", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().Decrease(gomock.Any(), "stk-1", 5, "").
			Return(entities.StockItem{}, &entities.InsufficientStockError{StockID: "stk-1", Available: 2, Requested: 5})

		w := serve(r, http.MethodPost, "/v1/stock-items/stk-1/decrease", `{"quantity":5}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("availability needs a numeric quantity", func(t *testing.T) {
		r, _ := newStockRouter(t)
		w := serve(r, http.MethodGet, "/v1/stock-items/stk-1/availability?quantity=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("availability", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().CheckAvailability(gomock.Any(), "stk-1", 3).
			Return(entities.StockAvailability{StockID: "stk-1", Available: false, CurrentStock: 2, RequestedQuantity: 3}, nil)

		w := serve(r, http.MethodGet, "/v1/stock-items/stk-1/availability?quantity=3", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["available"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("movements", func(t *testing.T) {
		r, ledger := newStockRouter(t)
		ledger.EXPECT().ListMovements(gomock.Any(), "stk-1").Return([]entities.StockMovement{
			{ID: "m-1", StockID: "stk-1", Type: entities.MovementTypeIn, Quantity: 10},
			{ID: "m-2", StockID: "stk-1", Type: entities.MovementTypeOut, Quantity: 3},
		}, nil)

		w := serve(r, http.MethodGet, "/v1/stock-items/stk-1/movements", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
