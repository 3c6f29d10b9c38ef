package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_xpto_workflow/internal/domain/entities"
	mock_interfaces "mecanica_xpto_workflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestStockLedger_CreateStockItem(t *testing.T) {
	ctx := context.Background()
	valid := CreateStockItemInput{SKU: "OIL-5W30", Name: "Engine oil", InitialStock: 5, MinStockLevel: 2, UnitCost: decimal.RequireFromString("20"), SalePrice: decimal.RequireFromString("35.90")}

	t.Run("invalid input", func(t *testing.T) {
		l := NewStockLedger(nil, nil)
		bad := valid
		bad.InitialStock = -1
		if _, err := l.CreateStockItem(ctx, bad); !errors.Is(err, ErrInvalidStockItem) {
			t.Fatalf("expected ErrInvalidStockItem, got %v", err)
		}
	})

	t.Run("duplicate sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetBySKU(gomock.Any(), "OIL-5W30").Return(entities.StockItem{ID: "stk-1"}, nil)

		if _, err := l.CreateStockItem(ctx, valid); !errors.Is(err, ErrDuplicateSKU) {
			t.Fatalf("expected ErrDuplicateSKU, got %v", err)
		}
	})

	t.Run("initial stock is booked as an IN movement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)

		var created entities.StockItem
		repo.EXPECT().GetBySKU(gomock.Any(), "OIL-5W30").Return(entities.StockItem{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.StockItem) (entities.StockItem, error) {
				if item.CurrentStock != 0 || item.ID == "" {
					t.Fatalf("item must start empty: %+v", item)
				}
				created = item
				return item, nil
			},
		)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) (entities.StockItem, error) { return created, nil },
		)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.StockMovement) (entities.StockItem, error) {
				if m.Type != entities.MovementTypeIn || m.Quantity != 5 || m.Reason != "initial stock" {
					t.Fatalf("unexpected movement: %+v", m)
				}
				item := created
				item.CurrentStock = 5
				return item, nil
			},
		)

		item, err := l.CreateStockItem(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 5 {
			t.Fatalf("expected stock 5, got %d", item.CurrentStock)
		}
	})
}

func TestStockLedger_Decrease(t *testing.T) {
	ctx := context.Background()

	t.Run("advisory check rejects before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "stk-1").Return(entities.StockItem{ID: "stk-1", CurrentStock: 5}, nil)

		_, err := l.Decrease(ctx, "stk-1", 10, "budget:b-1")
		var stockErr *entities.InsufficientStockError
		if !errors.As(err, &stockErr) || stockErr.Available != 5 || stockErr.Requested != 10 {
			t.Fatalf("expected InsufficientStockError 5/10, got %v", err)
		}
	})

	t.Run("storage guard wins a race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "stk-1").Return(entities.StockItem{ID: "stk-1", CurrentStock: 3}, nil)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(entities.StockItem{},
			&entities.InsufficientStockError{StockID: "stk-1", Available: 1, Requested: 3})

		_, err := l.Decrease(ctx, "stk-1", 3, "")
		var stockErr *entities.InsufficientStockError
		if !errors.As(err, &stockErr) || stockErr.Available != 1 {
			t.Fatalf("expected storage InsufficientStockError, got %v", err)
		}
	})

	t.Run("item removed between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "stk-1").Return(entities.StockItem{ID: "stk-1", CurrentStock: 3}, nil)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(entities.StockItem{}, nil)

		if _, err := l.Decrease(ctx, "stk-1", 1, ""); !errors.Is(err, ErrStockItemNotFound) {
			t.Fatalf("expected ErrStockItemNotFound, got %v", err)
		}
	})

	t.Run("invalid quantity", func(t *testing.T) {
		l := NewStockLedger(nil, nil)
		if _, err := l.Decrease(ctx, "stk-1", 0, ""); !errors.Is(err, entities.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("success records metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		metrics := mock_interfaces.NewMockIWorkflowMetrics(ctrl)
		l := NewStockLedger(repo, nil, WithMetrics(metrics))
		repo.EXPECT().GetByID(gomock.Any(), "stk-1").Return(entities.StockItem{ID: "stk-1", CurrentStock: 3, MinStockLevel: 2}, nil)
		repo.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(entities.StockItem{ID: "stk-1", CurrentStock: 1, MinStockLevel: 2}, nil)
		metrics.EXPECT().ObserveStockMovement(entities.MovementTypeOut, true)

		item, err := l.Decrease(ctx, "stk-1", 2, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CurrentStock != 1 {
			t.Fatalf("expected stock 1, got %d", item.CurrentStock)
		}
	})
}

func TestStockLedger_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid quantity", func(t *testing.T) {
		l := NewStockLedger(nil, nil)
		if _, err := l.CheckAvailability(ctx, "stk-1", 0); !errors.Is(err, entities.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("read only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "stk-1").Return(entities.StockItem{ID: "stk-1", CurrentStock: 4}, nil)

		av, err := l.CheckAvailability(ctx, "stk-1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if av.Available || av.CurrentStock != 4 || av.RequestedQuantity != 5 {
			t.Fatalf("unexpected availability: %+v", av)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIStockItemRepository(ctrl)
		l := NewStockLedger(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "stk-404").Return(entities.StockItem{}, nil)

		if _, err := l.CheckAvailability(ctx, "stk-404", 1); !errors.Is(err, ErrStockItemNotFound) {
			t.Fatalf("expected ErrStockItemNotFound, got %v", err)
		}
	})
}
