package interfaces

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
)

// IStockItemRepository abstracts persistence for stock items and their movement ledger.
type IStockItemRepository interface {
	Create(ctx context.Context, item entities.StockItem) (entities.StockItem, error)
	GetByID(ctx context.Context, id string) (entities.StockItem, error)
	GetBySKU(ctx context.Context, sku string) (entities.StockItem, error)

	// ApplyMovement appends the movement and applies its signed quantity in one atomic write guarded by
	// current_stock >= quantity for OUT movements. A failed guard returns
	// *entities.InsufficientStockError carrying the stock seen by the storage. Applying a
	// movement ID that was already recorded is a no-op returning the current item.
	// A missing item yields a zero-value StockItem.
	ApplyMovement(ctx context.Context, movement entities.StockMovement) (entities.StockItem, error)
	ListMovements(ctx context.Context, stockID string) ([]entities.StockMovement, error)
}
