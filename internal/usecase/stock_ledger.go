package usecase

import (
	"context"
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/retry"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrInvalidStockID    = errors.New("invalid stock item id")
	ErrInvalidStockItem  = errors.New("invalid stock item")
	ErrDuplicateSKU      = errors.New("stock item sku already exists")
)

// CreateStockItemInput describes a new stock item. InitialStock is booked as an IN movement.
type CreateStockItemInput struct {
	SKU           string
	Name          string
	InitialStock  int
	MinStockLevel int
	UnitCost      decimal.Decimal
	SalePrice     decimal.Decimal
}

// IStockLedger keeps stock quantities and their movement history.
//
// Every quantity change goes through a movement; the stored stock is updated with an
// atomic conditional write so concurrent decreases cannot oversell an item.
type IStockLedger interface {
	CreateStockItem(ctx context.Context, in CreateStockItemInput) (entities.StockItem, error)
	GetStockItem(ctx context.Context, stockID string) (entities.StockItem, error)
	RecordMovement(ctx context.Context, stockID string, movementType entities.MovementType, quantity int, reason string) (entities.StockMovement, error)
	Decrease(ctx context.Context, stockID string, quantity int, reason string) (entities.StockItem, error)
	CheckAvailability(ctx context.Context, stockID string, quantity int) (entities.StockAvailability, error)
	ListMovements(ctx context.Context, stockID string) ([]entities.StockMovement, error)
}

type StockLedger struct {
	repo  interfaces.IStockItemRepository
	retry *retry.Policy
	opts  options
}

var _ IStockLedger = (*StockLedger)(nil)

func NewStockLedger(repo interfaces.IStockItemRepository, policy *retry.Policy, opts ...Option) *StockLedger {
	return &StockLedger{repo: repo, retry: policy, opts: buildOptions("stock", opts)}
}

func (l *StockLedger) CreateStockItem(ctx context.Context, in CreateStockItemInput) (entities.StockItem, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	if in.SKU == "" || in.Name == "" || in.InitialStock < 0 || in.MinStockLevel < 0 ||
		in.UnitCost.IsNegative() || in.SalePrice.IsNegative() {
		return entities.StockItem{}, ErrInvalidStockItem
	}

	existing, err := retryDo(ctx, l.retry, "stock.get_by_sku", func(ctx context.Context) (entities.StockItem, error) {
		return l.repo.GetBySKU(ctx, in.SKU)
	})
	if err != nil {
		return entities.StockItem{}, err
	}
	if existing.ID != "" {
		return entities.StockItem{}, ErrDuplicateSKU
	}

	now := entities.Now()
	item := entities.StockItem{
		ID:            uuid.NewString(),
		SKU:           in.SKU,
		Name:          in.Name,
		MinStockLevel: in.MinStockLevel,
		UnitCost:      in.UnitCost,
		SalePrice:     in.SalePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := retryDo(ctx, l.retry, "stock.create", func(ctx context.Context) (entities.StockItem, error) {
		return l.repo.Create(ctx, item)
	})
	if err != nil {
		return entities.StockItem{}, err
	}
	l.opts.logger.Info().Str("stock_id", created.ID).Str("sku", created.SKU).Msg("stock item created")

	if in.InitialStock == 0 {
		return created, nil
	}
	_, updated, err := l.apply(ctx, created.ID, entities.MovementTypeIn, in.InitialStock, "initial stock")
	if err != nil {
		return created, err
	}
	return updated, nil
}

func (l *StockLedger) GetStockItem(ctx context.Context, stockID string) (entities.StockItem, error) {
	stockID = strings.TrimSpace(stockID)
	if stockID == "" {
		return entities.StockItem{}, ErrInvalidStockID
	}
	return l.load(ctx, stockID)
}

func (l *StockLedger) RecordMovement(ctx context.Context, stockID string, movementType entities.MovementType, quantity int, reason string) (entities.StockMovement, error) {
	m, _, err := l.apply(ctx, stockID, movementType, quantity, reason)
	return m, err
}

// Decrease books an OUT movement and returns the updated item.
func (l *StockLedger) Decrease(ctx context.Context, stockID string, quantity int, reason string) (entities.StockItem, error) {
	_, item, err := l.apply(ctx, stockID, entities.MovementTypeOut, quantity, reason)
	return item, err
}

// CheckAvailability is read-only.
func (l *StockLedger) CheckAvailability(ctx context.Context, stockID string, quantity int) (entities.StockAvailability, error) {
	if quantity <= 0 {
		return entities.StockAvailability{}, entities.ErrInvalidQuantity
	}
	item, err := l.GetStockItem(ctx, stockID)
	if err != nil {
		return entities.StockAvailability{}, err
	}
	return item.CheckAvailability(quantity), nil
}

func (l *StockLedger) ListMovements(ctx context.Context, stockID string) ([]entities.StockMovement, error) {
	if _, err := l.GetStockItem(ctx, stockID); err != nil {
		return nil, err
	}
	return retryDo(ctx, l.retry, "stock.list_movements", func(ctx context.Context) ([]entities.StockMovement, error) {
		return l.repo.ListMovements(ctx, stockID)
	})
}

func (l *StockLedger) apply(ctx context.Context, stockID string, movementType entities.MovementType, quantity int, reason string) (entities.StockMovement, entities.StockItem, error) {
	stockID = strings.TrimSpace(stockID)
	if stockID == "" {
		return entities.StockMovement{}, entities.StockItem{}, ErrInvalidStockID
	}
	m, err := entities.NewStockMovement(uuid.NewString(), stockID, movementType, quantity, reason)
	if err != nil {
		return entities.StockMovement{}, entities.StockItem{}, err
	}

	item, err := l.load(ctx, stockID)
	if err != nil {
		return entities.StockMovement{}, entities.StockItem{}, err
	}
	// Advisory; the storage re-checks the guard in the same write.
	if err := item.ValidateMovement(m); err != nil {
		l.opts.metrics.ObserveStockMovement(movementType, false)
		return entities.StockMovement{}, item, err
	}

	updated, err := retryDo(ctx, l.retry, "stock.apply_movement", func(ctx context.Context) (entities.StockItem, error) {
		return l.repo.ApplyMovement(ctx, m)
	})
	if err != nil {
		l.opts.metrics.ObserveStockMovement(movementType, false)
		var stockErr *entities.InsufficientStockError
		if errors.As(err, &stockErr) {
			l.opts.logger.Warn().Str("stock_id", stockID).Int("available", stockErr.Available).
				Int("requested", stockErr.Requested).Msg("stock guard rejected movement")
			return entities.StockMovement{}, item, stockErr
		}
		return entities.StockMovement{}, item, err
	}
	if updated.ID == "" {
		return entities.StockMovement{}, entities.StockItem{}, ErrStockItemNotFound
	}
	l.opts.metrics.ObserveStockMovement(movementType, true)

	evt := l.opts.logger.Info()
	if updated.IsBelowMinimum() {
		evt = l.opts.logger.Warn().Int("min_stock_level", updated.MinStockLevel)
	}
	evt.Str("stock_id", stockID).Str("movement_id", m.ID).Str("type", string(m.Type)).
		Int("quantity", m.Quantity).Int("current_stock", updated.CurrentStock).Str("reason", m.Reason).
		Msg("stock movement recorded")
	return m, updated, nil
}

func (l *StockLedger) load(ctx context.Context, stockID string) (entities.StockItem, error) {
	item, err := retryDo(ctx, l.retry, "stock.get", func(ctx context.Context) (entities.StockItem, error) {
		return l.repo.GetByID(ctx, stockID)
	})
	if err != nil {
		return entities.StockItem{}, err
	}
	if item.ID == "" {
		return entities.StockItem{}, ErrStockItemNotFound
	}
	return item, nil
}
