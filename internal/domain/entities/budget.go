package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// GENERATED -> SENT -> RECEIVED -> APPROVED | REJECTED, with approval/rejection also
// accepted straight from SENT when the client skips the confirmation step.
type BudgetStatus string

const (
	BudgetStatusGenerated BudgetStatus = "GENERATED"
	BudgetStatusSent      BudgetStatus = "SENT"
	BudgetStatusReceived  BudgetStatus = "RECEIVED"
	BudgetStatusApproved  BudgetStatus = "APPROVED"
	BudgetStatusRejected  BudgetStatus = "REJECTED"
)

const DefaultBudgetValidityDays = 15

type BudgetItemType string

const (
	BudgetItemTypeService   BudgetItemType = "SERVICE"
	BudgetItemTypeStockItem BudgetItemType = "STOCK_ITEM"
)

// BudgetItem is a budget line. StockItemID is set only for STOCK_ITEM lines.
type BudgetItem struct {
	ID          string          `json:"id"`
	Type        BudgetItemType  `json:"type"`
	StockItemID string          `json:"stock_item_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (i BudgetItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i BudgetItem) Validate() error {
	switch i.Type {
	case BudgetItemTypeService:
	case BudgetItemTypeStockItem:
		if strings.TrimSpace(i.StockItemID) == "" {
			return ErrInvalidBudgetItem
		}
	default:
		return ErrInvalidBudgetItem
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.UnitPrice.IsNegative() {
		return ErrInvalidBudgetItem
	}
	return nil
}

type Budget struct {
	ID              string       `json:"id"`
	Status          BudgetStatus `json:"status"`
	ValidityPeriod  int          `json:"validity_period"` // days, counted from SentDate
	SentDate        *time.Time   `json:"sent_date,omitempty"`
	ApprovalDate    *time.Time   `json:"approval_date,omitempty"`
	RejectionDate   *time.Time   `json:"rejection_date,omitempty"`
	StockConsumedAt *time.Time   `json:"stock_consumed_at,omitempty"`
	ServiceOrderID  string       `json:"service_order_id"`
	ClientID        string       `json:"client_id"`
	Items           []BudgetItem `json:"items"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Version         int64        `json:"version"`
}

func NewBudget(id, serviceOrderID, clientID string, validityDays int) (Budget, error) {
	if validityDays == 0 {
		validityDays = DefaultBudgetValidityDays
	}
	if validityDays < 0 {
		return Budget{}, ErrInvalidValidityPeriod
	}
	now := clock()
	return Budget{
		ID:             id,
		Status:         BudgetStatusGenerated,
		ValidityPeriod: validityDays,
		ServiceOrderID: serviceOrderID,
		ClientID:       clientID,
		Items:          []BudgetItem{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// AddItem appends a line while the budget is still GENERATED. The IN_DIAGNOSIS rule on
// the owning service order is enforced by the workflow coordinator.
func (b *Budget) AddItem(item BudgetItem) error {
	if b.Status != BudgetStatusGenerated {
		return &InvalidBudgetStatusError{BudgetID: b.ID, Status: b.Status, Action: "add items"}
	}
	if err := item.Validate(); err != nil {
		return err
	}
	b.Items = append(b.Items, item)
	b.UpdatedAt = clock()
	return nil
}

func (b *Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// StockItems returns the STOCK_ITEM lines, in insertion order.
func (b *Budget) StockItems() []BudgetItem {
	var out []BudgetItem
	for _, it := range b.Items {
		if it.Type == BudgetItemTypeStockItem {
			out = append(out, it)
		}
	}
	return out
}

func (b *Budget) Send() error {
	if err := b.transition(BudgetStatusSent); err != nil {
		return err
	}
	sent := b.UpdatedAt
	b.SentDate = &sent
	return nil
}

// Receive acknowledges delivery to the client. Calling it again on a RECEIVED budget is a no-op.
func (b *Budget) Receive() error {
	if b.Status == BudgetStatusReceived {
		return nil
	}
	return b.transition(BudgetStatusReceived)
}

func (b *Budget) Approve() error {
	if err := b.checkDecision("approve"); err != nil {
		return err
	}
	if err := b.transition(BudgetStatusApproved); err != nil {
		return err
	}
	approved := b.UpdatedAt
	b.ApprovalDate = &approved
	return nil
}

func (b *Budget) Reject() error {
	if err := b.checkDecision("reject"); err != nil {
		return err
	}
	if err := b.transition(BudgetStatusRejected); err != nil {
		return err
	}
	rejected := b.UpdatedAt
	b.RejectionDate = &rejected
	return nil
}

// ExpiresAt is SentDate + ValidityPeriod days; zero while the budget was never sent.
func (b *Budget) ExpiresAt() time.Time {
	if b.SentDate == nil {
		return time.Time{}
	}
	return b.SentDate.AddDate(0, 0, b.ValidityPeriod)
}

func (b *Budget) IsExpired() bool {
	if b.SentDate == nil {
		return false
	}
	return clock().After(b.ExpiresAt())
}

func (b *Budget) MarkStockConsumed() {
	now := clock()
	b.StockConsumedAt = &now
	b.UpdatedAt = now
}

// ClearStockConsumed releases a consumption claim whose stock could not be taken.
func (b *Budget) ClearStockConsumed() {
	b.StockConsumedAt = nil
	b.UpdatedAt = clock()
}

func (b *Budget) IsInFinalState() bool {
	return IsFinalStatus(EntityKindBudget, string(b.Status))
}

func (b *Budget) checkDecision(action string) error {
	if b.Status != BudgetStatusSent && b.Status != BudgetStatusReceived {
		return &InvalidBudgetStatusError{BudgetID: b.ID, Status: b.Status, Action: action}
	}
	if b.IsExpired() {
		return &BudgetExpiredError{BudgetID: b.ID, ExpiredAt: b.ExpiresAt()}
	}
	return nil
}

func (b *Budget) transition(target BudgetStatus) error {
	if err := ValidateTransition(EntityKindBudget, string(b.Status), string(target)); err != nil {
		return err
	}
	b.Status = target
	b.UpdatedAt = clock()
	return nil
}
