// Package memory holds process-local repositories used by PERSISTENCE_DRIVER=memory and by tests.
// They follow the same contracts as the DynamoDB repositories, including the atomic stock guard
// and the version check on Save.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
)

var ErrAlreadyExists = errors.New("item already exists")

type ServiceOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.ServiceOrder
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository() *ServiceOrderRepository {
	return &ServiceOrderRepository{orders: map[string]entities.ServiceOrder{}}
}

func (r *ServiceOrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		return entities.ServiceOrder{}, ErrAlreadyExists
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

func (r *ServiceOrderRepository) Save(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID]
	if !ok {
		return entities.ServiceOrder{}, nil
	}
	if stored.Version != o.Version {
		return entities.ServiceOrder{}, interfaces.ErrConcurrentUpdate
	}
	o.Version++
	r.orders[o.ID] = o
	return o, nil
}

type BudgetRepository struct {
	mu      sync.RWMutex
	budgets map[string]entities.Budget
}

var _ interfaces.IBudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{budgets: map[string]entities.Budget{}}
}

func (r *BudgetRepository) Create(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.budgets[b.ID]; ok {
		return entities.Budget{}, ErrAlreadyExists
	}
	r.budgets[b.ID] = copyBudget(b)
	return copyBudget(b), nil
}

func (r *BudgetRepository) GetByID(_ context.Context, id string) (entities.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.budgets[id]
	if !ok {
		return entities.Budget{}, nil
	}
	return copyBudget(b), nil
}

func (r *BudgetRepository) Save(_ context.Context, b entities.Budget) (entities.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.budgets[b.ID]
	if !ok {
		return entities.Budget{}, nil
	}
	if stored.Version != b.Version {
		return entities.Budget{}, interfaces.ErrConcurrentUpdate
	}
	b.Version++
	r.budgets[b.ID] = copyBudget(b)
	return copyBudget(b), nil
}

func (r *BudgetRepository) ListByServiceOrderID(_ context.Context, serviceOrderID string) ([]entities.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Budget{}
	for _, b := range r.budgets {
		if b.ServiceOrderID == serviceOrderID {
			out = append(out, copyBudget(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func copyBudget(b entities.Budget) entities.Budget {
	b.Items = append([]entities.BudgetItem{}, b.Items...)
	return b
}

type ServiceExecutionRepository struct {
	mu         sync.RWMutex
	executions map[string]entities.ServiceExecution
}

var _ interfaces.IServiceExecutionRepository = (*ServiceExecutionRepository)(nil)

func NewServiceExecutionRepository() *ServiceExecutionRepository {
	return &ServiceExecutionRepository{executions: map[string]entities.ServiceExecution{}}
}

func (r *ServiceExecutionRepository) Create(_ context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.executions[e.ID]; ok {
		return entities.ServiceExecution{}, ErrAlreadyExists
	}
	r.executions[e.ID] = e
	return e, nil
}

func (r *ServiceExecutionRepository) GetByID(_ context.Context, id string) (entities.ServiceExecution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.executions[id], nil
}

func (r *ServiceExecutionRepository) Save(_ context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.executions[e.ID]
	if !ok {
		return entities.ServiceExecution{}, nil
	}
	if stored.Version != e.Version {
		return entities.ServiceExecution{}, interfaces.ErrConcurrentUpdate
	}
	e.Version++
	r.executions[e.ID] = e
	return e, nil
}

func (r *ServiceExecutionRepository) ListByServiceOrderID(_ context.Context, serviceOrderID string) ([]entities.ServiceExecution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.ServiceExecution{}
	for _, e := range r.executions {
		if e.ServiceOrderID == serviceOrderID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// StockItemRepository applies movements under a single mutex, which gives the same
// check-and-write atomicity the DynamoDB transaction provides.
type StockItemRepository struct {
	mu        sync.Mutex
	items     map[string]entities.StockItem
	movements map[string][]entities.StockMovement
	applied   map[string]bool
}

var _ interfaces.IStockItemRepository = (*StockItemRepository)(nil)

func NewStockItemRepository() *StockItemRepository {
	return &StockItemRepository{
		items:     map[string]entities.StockItem{},
		movements: map[string][]entities.StockMovement{},
		applied:   map[string]bool{},
	}
}

func (r *StockItemRepository) Create(_ context.Context, item entities.StockItem) (entities.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; ok {
		return entities.StockItem{}, ErrAlreadyExists
	}
	for _, existing := range r.items {
		if existing.SKU == item.SKU {
			return entities.StockItem{}, ErrAlreadyExists
		}
	}
	r.items[item.ID] = item
	return item, nil
}

func (r *StockItemRepository) GetByID(_ context.Context, id string) (entities.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *StockItemRepository) GetBySKU(_ context.Context, sku string) (entities.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return entities.StockItem{}, nil
}

func (r *StockItemRepository) ApplyMovement(_ context.Context, movement entities.StockMovement) (entities.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[movement.StockID]
	if !ok {
		return entities.StockItem{}, nil
	}
	if r.applied[movement.ID] {
		return item, nil
	}
	if err := item.ApplyMovement(movement); err != nil {
		return entities.StockItem{}, err
	}
	r.items[item.ID] = item
	r.movements[item.ID] = append(r.movements[item.ID], movement)
	r.applied[movement.ID] = true
	return item, nil
}

func (r *StockItemRepository) ListMovements(_ context.Context, stockID string) ([]entities.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.StockMovement{}, r.movements[stockID]...), nil
}

type BillingPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.BillingPayment
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository() *BillingPaymentRepository {
	return &BillingPaymentRepository{payments: map[string]entities.BillingPayment{}}
}

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.ID]; ok {
		return entities.BillingPayment{}, ErrAlreadyExists
	}
	r.payments[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *BillingPaymentRepository) ListByBudgetID(_ context.Context, budgetID string) ([]entities.BillingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.BillingPayment{}
	for _, p := range r.payments {
		if p.BudgetID == budgetID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
