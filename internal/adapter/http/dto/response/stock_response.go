package response

import (
	"mecanica_xpto_workflow/internal/domain/entities"
	"time"
)

type StockItemResponse struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	CurrentStock  int       `json:"current_stock"`
	MinStockLevel int       `json:"min_stock_level"`
	BelowMinimum  bool      `json:"below_minimum"`
	UnitCost      string    `json:"unit_cost"`
	SalePrice     string    `json:"sale_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StockMovementResponse struct {
	ID        string    `json:"id"`
	StockID   string    `json:"stock_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromStockItem(s entities.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:            s.ID,
		SKU:           s.SKU,
		Name:          s.Name,
		CurrentStock:  s.CurrentStock,
		MinStockLevel: s.MinStockLevel,
		BelowMinimum:  s.CurrentStock < s.MinStockLevel,
		UnitCost:      s.UnitCost.StringFixed(2),
		SalePrice:     s.SalePrice.StringFixed(2),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromStockMovement(m entities.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		StockID:   m.StockID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

func FromStockMovements(list []entities.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromStockMovement(m))
	}
	return out
}
