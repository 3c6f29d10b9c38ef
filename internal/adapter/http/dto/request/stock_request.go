package request

import (
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMovementType = errors.New("invalid movement type")

type CreateStockItemRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	InitialStock  int             `json:"initial_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

func (r CreateStockItemRequest) ToInput() usecase.CreateStockItemInput {
	return usecase.CreateStockItemInput{
		SKU:           strings.TrimSpace(r.SKU),
		Name:          strings.TrimSpace(r.Name),
		InitialStock:  r.InitialStock,
		MinStockLevel: r.MinStockLevel,
		UnitCost:      r.UnitCost,
		SalePrice:     r.SalePrice,
	}
}

type StockMovementRequest struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason"`
}

func (r StockMovementRequest) ResolveType() (entities.MovementType, error) {
	t := entities.MovementType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if !t.IsValid() {
		return "", ErrInvalidMovementType
	}
	return t, nil
}

type StockDecreaseRequest struct {
	Quantity int    `json:"quantity" binding:"required"`
	Reason   string `json:"reason"`
}
