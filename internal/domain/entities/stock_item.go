package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementTypeIn  MovementType = "IN"
	MovementTypeOut MovementType = "OUT"
)

func (t MovementType) IsValid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockItem is a part or supply kept by the workshop.
// CurrentStock always equals the signed sum of its movements and never goes below zero.
type StockItem struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CurrentStock  int             `json:"current_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockMovement is an immutable ledger entry. Quantity is always positive; Type gives the sign.
type StockMovement struct {
	ID        string       `json:"id"`
	StockID   string       `json:"stock_id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	CreatedAt time.Time    `json:"created_at"`
}

// StockAvailability is the result of a read-only availability check.
type StockAvailability struct {
	StockID           string `json:"stock_id"`
	Available         bool   `json:"available"`
	CurrentStock      int    `json:"current_stock"`
	RequestedQuantity int    `json:"requested_quantity"`
}

func NewStockMovement(id, stockID string, movementType MovementType, quantity int, reason string) (StockMovement, error) {
	if !movementType.IsValid() {
		return StockMovement{}, ErrInvalidMovementType
	}
	if quantity <= 0 {
		return StockMovement{}, ErrInvalidQuantity
	}
	return StockMovement{
		ID:        id,
		StockID:   stockID,
		Type:      movementType,
		Quantity:  quantity,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: clock(),
	}, nil
}

// SignedQuantity is +Quantity for IN and -Quantity for OUT.
func (m StockMovement) SignedQuantity() int {
	if m.Type == MovementTypeOut {
		return -m.Quantity
	}
	return m.Quantity
}

// ValidateMovement checks m against the item without mutating it.
func (s *StockItem) ValidateMovement(m StockMovement) error {
	if !m.Type.IsValid() {
		return ErrInvalidMovementType
	}
	if m.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if m.Type == MovementTypeOut && s.CurrentStock-m.Quantity < 0 {
		return &InsufficientStockError{StockID: s.ID, Available: s.CurrentStock, Requested: m.Quantity}
	}
	return nil
}

// ApplyMovement validates m and applies its signed delta. The item is left untouched on error.
func (s *StockItem) ApplyMovement(m StockMovement) error {
	if err := s.ValidateMovement(m); err != nil {
		return err
	}
	s.CurrentStock += m.SignedQuantity()
	s.UpdatedAt = m.CreatedAt
	return nil
}

func (s *StockItem) CheckAvailability(quantity int) StockAvailability {
	return StockAvailability{
		StockID:           s.ID,
		Available:         quantity > 0 && s.CurrentStock >= quantity,
		CurrentStock:      s.CurrentStock,
		RequestedQuantity: quantity,
	}
}

func (s *StockItem) IsBelowMinimum() bool {
	return s.CurrentStock < s.MinStockLevel
}
