package request

import (
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidBudgetItemType = errors.New("invalid budget item type")

type CreateBudgetRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
	ClientID       string `json:"client_id"`
	ValidityDays   int    `json:"validity_days"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	return usecase.CreateBudgetInput{
		ServiceOrderID: strings.TrimSpace(r.ServiceOrderID),
		ClientID:       strings.TrimSpace(r.ClientID),
		ValidityDays:   r.ValidityDays,
	}
}

// BudgetItemRequest accepts unit_price as a JSON number or a decimal string.
type BudgetItemRequest struct {
	Type        string          `json:"type" binding:"required"`
	StockItemID string          `json:"stock_item_id"`
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (r BudgetItemRequest) ToInput() (usecase.BudgetItemInput, error) {
	itemType := entities.BudgetItemType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if itemType != entities.BudgetItemTypeService && itemType != entities.BudgetItemTypeStockItem {
		return usecase.BudgetItemInput{}, ErrInvalidBudgetItemType
	}
	return usecase.BudgetItemInput{
		Type:        itemType,
		StockItemID: strings.TrimSpace(r.StockItemID),
		Description: strings.TrimSpace(r.Description),
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}, nil
}
