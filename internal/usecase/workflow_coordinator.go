package usecase

import (
	"context"
	"errors"
	"fmt"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/retry"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound                   = errors.New("budget not found")
	ErrServiceExecutionNotFound         = errors.New("service execution not found")
	ErrInvalidBudgetID                  = errors.New("invalid budget id")
	ErrInvalidServiceExecutionID        = errors.New("invalid service execution id")
	ErrInvalidMechanicID                = errors.New("invalid mechanic id")
	ErrServiceOrderNotReadyForBudget    = errors.New("service order is not in diagnosis")
	ErrServiceOrderNotReadyForExecution = errors.New("service order is not approved or scheduled")
	ErrOpenBudgetExists                 = errors.New("service order already has an open budget")
	ErrActiveExecutionExists            = errors.New("service order already has an active execution")
	ErrBudgetStockAlreadyConsumed       = errors.New("budget stock already consumed")
)

// CascadeOutcome describes the best-effort transition applied to the service order after a
// budget or execution transition. A cascade that did not apply never fails the operation.
type CascadeOutcome struct {
	Attempted bool                `json:"attempted"`
	Applied   bool                `json:"applied"`
	Target    entities.EntityKind `json:"target"`
	TargetID  string              `json:"target_id"`
	From      string              `json:"from,omitempty"`
	To        string              `json:"to"`
	Reason    string              `json:"reason,omitempty"`
	Err       error               `json:"-"`
}

// Outcome is one of interfaces.CascadeApplied, CascadeSkipped or CascadeFailed.
func (c CascadeOutcome) Outcome() string {
	switch {
	case c.Applied:
		return interfaces.CascadeApplied
	case c.Attempted:
		return interfaces.CascadeFailed
	default:
		return interfaces.CascadeSkipped
	}
}

type BudgetResult struct {
	Budget       entities.Budget
	ServiceOrder entities.ServiceOrder
	Cascade      CascadeOutcome
}

type ExecutionResult struct {
	Execution    entities.ServiceExecution
	ServiceOrder entities.ServiceOrder
	Cascade      CascadeOutcome
}

type CreateBudgetInput struct {
	ServiceOrderID string
	ClientID       string // defaults to the service order client
	ValidityDays   int    // 0 uses entities.DefaultBudgetValidityDays
}

type BudgetItemInput struct {
	Type        entities.BudgetItemType
	StockItemID string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// IWorkflowCoordinator drives budgets and executions and keeps the owning service order in step.
//
// Each transition is persisted before the service order cascade is attempted. Cascades
// are advisory: when they are skipped or fail the primary transition stays committed, a
// warning event is published and the result carries the outcome for manual correction.
type IWorkflowCoordinator interface {
	CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error)
	GetBudget(ctx context.Context, budgetID string) (entities.Budget, error)
	AddBudgetItem(ctx context.Context, budgetID string, in BudgetItemInput) (entities.Budget, error)
	SendBudget(ctx context.Context, budgetID string) (BudgetResult, error)
	ReceiveBudget(ctx context.Context, budgetID string) (entities.Budget, error)
	ApproveBudget(ctx context.Context, budgetID string) (BudgetResult, error)
	RejectBudget(ctx context.Context, budgetID string) (BudgetResult, error)
	ConsumeBudgetStock(ctx context.Context, budgetID string) (entities.Budget, error)

	AssignExecution(ctx context.Context, serviceOrderID, mechanicID string) (entities.ServiceExecution, error)
	GetExecution(ctx context.Context, executionID string) (entities.ServiceExecution, error)
	StartExecution(ctx context.Context, executionID string) (ExecutionResult, error)
	CompleteExecution(ctx context.Context, executionID string, actualHours float64, notes string) (ExecutionResult, error)
}

type WorkflowCoordinator struct {
	orders     interfaces.IServiceOrderRepository
	budgets    interfaces.IBudgetRepository
	executions interfaces.IServiceExecutionRepository
	ledger     IStockLedger
	publisher  interfaces.IEventPublisher
	retry      *retry.Policy
	opts       options
}

var _ IWorkflowCoordinator = (*WorkflowCoordinator)(nil)

func NewWorkflowCoordinator(
	orders interfaces.IServiceOrderRepository,
	budgets interfaces.IBudgetRepository,
	executions interfaces.IServiceExecutionRepository,
	ledger IStockLedger,
	publisher interfaces.IEventPublisher,
	policy *retry.Policy,
	opts ...Option,
) *WorkflowCoordinator {
	return &WorkflowCoordinator{
		orders:     orders,
		budgets:    budgets,
		executions: executions,
		ledger:     ledger,
		publisher:  publisher,
		retry:      policy,
		opts:       buildOptions("workflow", opts),
	}
}

// cascadeStep is the service order transition that follows a budget or execution transition.
type cascadeStep struct {
	eventType string
	to        entities.ServiceOrderStatus
	requires  []entities.ServiceOrderStatus // empty: attempt from any status
	apply     func(o *entities.ServiceOrder) error
}

var (
	sendCascade = cascadeStep{
		eventType: entities.EventTypeBudgetSent,
		to:        entities.ServiceOrderStatusAwaitingApproval,
		requires:  []entities.ServiceOrderStatus{entities.ServiceOrderStatusInDiagnosis},
		apply:     (*entities.ServiceOrder).MarkAwaitingApproval,
	}
	approveCascade = cascadeStep{
		eventType: entities.EventTypeBudgetApproved,
		to:        entities.ServiceOrderStatusApproved,
		apply:     (*entities.ServiceOrder).MarkApproved,
	}
	rejectCascade = cascadeStep{
		eventType: entities.EventTypeBudgetRejected,
		to:        entities.ServiceOrderStatusRejected,
		apply:     (*entities.ServiceOrder).MarkRejected,
	}
	startCascade = cascadeStep{
		eventType: entities.EventTypeExecutionStarted,
		to:        entities.ServiceOrderStatusInExecution,
		requires:  []entities.ServiceOrderStatus{entities.ServiceOrderStatusApproved, entities.ServiceOrderStatusScheduled},
		apply:     (*entities.ServiceOrder).MarkInExecution,
	}
	completeCascade = cascadeStep{
		eventType: entities.EventTypeExecutionCompleted,
		to:        entities.ServiceOrderStatusFinished,
		requires:  []entities.ServiceOrderStatus{entities.ServiceOrderStatusInExecution},
		apply:     (*entities.ServiceOrder).MarkFinished,
	}
)

func (c *WorkflowCoordinator) CreateBudget(ctx context.Context, in CreateBudgetInput) (entities.Budget, error) {
	soID := strings.TrimSpace(in.ServiceOrderID)
	if soID == "" {
		return entities.Budget{}, ErrInvalidServiceOrderID
	}
	release, _, err := c.opts.lockServiceOrder(ctx, soID)
	if err != nil {
		return entities.Budget{}, err
	}
	defer release()

	order, err := c.loadOrder(ctx, soID)
	if err != nil {
		return entities.Budget{}, err
	}
	if order.Status != entities.ServiceOrderStatusInDiagnosis {
		return entities.Budget{}, fmt.Errorf("%w: service order %s is %s", ErrServiceOrderNotReadyForBudget, soID, order.Status)
	}

	existing, err := retryDo(ctx, c.retry, "budget.list_by_service_order", func(ctx context.Context) ([]entities.Budget, error) {
		return c.budgets.ListByServiceOrderID(ctx, soID)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	for _, b := range existing {
		if !b.IsInFinalState() {
			return entities.Budget{}, fmt.Errorf("%w: %s", ErrOpenBudgetExists, b.ID)
		}
	}

	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		clientID = order.ClientID
	}
	b, err := entities.NewBudget(uuid.NewString(), soID, clientID, in.ValidityDays)
	if err != nil {
		return entities.Budget{}, err
	}
	created, err := retryDo(ctx, c.retry, "budget.create", func(ctx context.Context) (entities.Budget, error) {
		return c.budgets.Create(ctx, b)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	c.opts.logger.Info().Str("budget_id", created.ID).Str("service_order_id", soID).
		Int("validity_days", created.ValidityPeriod).Msg("budget created")
	return created, nil
}

func (c *WorkflowCoordinator) GetBudget(ctx context.Context, budgetID string) (entities.Budget, error) {
	return c.loadBudget(ctx, budgetID)
}

// AddBudgetItem requires the owning service order to be IN_DIAGNOSIS.
func (c *WorkflowCoordinator) AddBudgetItem(ctx context.Context, budgetID string, in BudgetItemInput) (entities.Budget, error) {
	b, release, err := c.lockBudget(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	defer release()

	order, err := c.loadOrder(ctx, b.ServiceOrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if !order.CanAddBudgetItems() {
		return entities.Budget{}, &entities.InvalidServiceOrderStatusForBudgetItemError{ServiceOrderID: order.ID, Status: order.Status}
	}

	item := entities.BudgetItem{
		ID:          uuid.NewString(),
		Type:        in.Type,
		StockItemID: strings.TrimSpace(in.StockItemID),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := item.Validate(); err != nil {
		return entities.Budget{}, err
	}
	if item.Type == entities.BudgetItemTypeStockItem {
		if _, err := c.ledger.GetStockItem(ctx, item.StockItemID); err != nil {
			return entities.Budget{}, err
		}
	}
	if err := b.AddItem(item); err != nil {
		return entities.Budget{}, err
	}

	saved, err := c.saveBudget(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	c.opts.logger.Info().Str("budget_id", saved.ID).Str("item_id", item.ID).Str("type", string(item.Type)).
		Str("total", saved.Total().StringFixed(2)).Msg("budget item added")
	return saved, nil
}

func (c *WorkflowCoordinator) SendBudget(ctx context.Context, budgetID string) (BudgetResult, error) {
	return c.transitionBudget(ctx, budgetID, (*entities.Budget).Send, sendCascade)
}

func (c *WorkflowCoordinator) ApproveBudget(ctx context.Context, budgetID string) (BudgetResult, error) {
	return c.transitionBudget(ctx, budgetID, (*entities.Budget).Approve, approveCascade)
}

func (c *WorkflowCoordinator) RejectBudget(ctx context.Context, budgetID string) (BudgetResult, error) {
	return c.transitionBudget(ctx, budgetID, (*entities.Budget).Reject, rejectCascade)
}

// ReceiveBudget records that the client got the budget. It has no cascade and repeating it is a no-op.
func (c *WorkflowCoordinator) ReceiveBudget(ctx context.Context, budgetID string) (entities.Budget, error) {
	b, release, err := c.lockBudget(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	defer release()

	from := b.Status
	if err := b.Receive(); err != nil {
		return entities.Budget{}, err
	}
	if from == b.Status {
		return b, nil
	}
	saved, err := c.saveBudget(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	c.opts.metrics.ObserveTransition(entities.EntityKindBudget, string(from), string(saved.Status))
	return saved, nil
}

// ConsumeBudgetStock takes the stock of every STOCK_ITEM line of an approved budget out of
// the ledger. The budget is claimed (StockConsumedAt saved under its version) before any
// stock moves, so a concurrent call fails on the claim. When a line fails, the lines
// already taken are put back, the claim is released and the error is returned.
func (c *WorkflowCoordinator) ConsumeBudgetStock(ctx context.Context, budgetID string) (entities.Budget, error) {
	b, release, err := c.lockBudget(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, err
	}
	defer release()

	if b.Status != entities.BudgetStatusApproved {
		return entities.Budget{}, &entities.InvalidBudgetStatusError{BudgetID: b.ID, Status: b.Status, Action: "consume stock"}
	}
	if b.StockConsumedAt != nil {
		return entities.Budget{}, ErrBudgetStockAlreadyConsumed
	}

	b.MarkStockConsumed()
	claimed, err := c.saveBudget(ctx, b)
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentUpdate) {
			c.opts.logger.Info().Str("budget_id", b.ID).Msg("budget changed while claiming stock consumption")
		}
		return entities.Budget{}, err
	}

	reason := "budget:" + claimed.ID
	var consumed []entities.BudgetItem
	for _, line := range claimed.StockItems() {
		if _, err := c.ledger.Decrease(ctx, line.StockItemID, line.Quantity, reason); err != nil {
			c.opts.logger.Warn().Err(err).Str("budget_id", claimed.ID).Str("stock_id", line.StockItemID).
				Int("lines_to_compensate", len(consumed)).Msg("budget stock consumption failed")
			c.compensate(ctx, claimed.ID, consumed)
			c.releaseStockClaim(ctx, claimed)
			return entities.Budget{}, err
		}
		consumed = append(consumed, line)
	}
	c.opts.logger.Info().Str("budget_id", claimed.ID).Int("lines", len(consumed)).Msg("budget stock consumed")
	return claimed, nil
}

func (c *WorkflowCoordinator) releaseStockClaim(ctx context.Context, claimed entities.Budget) {
	claimed.ClearStockConsumed()
	if _, err := c.saveBudget(ctx, claimed); err != nil {
		c.opts.logger.Error().Err(err).Str("budget_id", claimed.ID).
			Msg("stock consumption claim not released, manual correction required")
	}
}

func (c *WorkflowCoordinator) compensate(ctx context.Context, budgetID string, lines []entities.BudgetItem) {
	reason := "budget:" + budgetID + ":compensation"
	for _, line := range lines {
		if _, err := c.ledger.RecordMovement(ctx, line.StockItemID, entities.MovementTypeIn, line.Quantity, reason); err != nil {
			c.opts.logger.Error().Err(err).Str("budget_id", budgetID).Str("stock_id", line.StockItemID).
				Int("quantity", line.Quantity).Msg("stock compensation failed, manual adjustment required")
		}
	}
}

// AssignExecution allows a single active execution per service order.
func (c *WorkflowCoordinator) AssignExecution(ctx context.Context, serviceOrderID, mechanicID string) (entities.ServiceExecution, error) {
	soID := strings.TrimSpace(serviceOrderID)
	mechanicID = strings.TrimSpace(mechanicID)
	if soID == "" {
		return entities.ServiceExecution{}, ErrInvalidServiceOrderID
	}
	if mechanicID == "" {
		return entities.ServiceExecution{}, ErrInvalidMechanicID
	}
	release, _, err := c.opts.lockServiceOrder(ctx, soID)
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	defer release()

	order, err := c.loadOrder(ctx, soID)
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	if order.Status != entities.ServiceOrderStatusApproved && order.Status != entities.ServiceOrderStatusScheduled {
		return entities.ServiceExecution{}, fmt.Errorf("%w: service order %s is %s", ErrServiceOrderNotReadyForExecution, soID, order.Status)
	}

	existing, err := retryDo(ctx, c.retry, "execution.list_by_service_order", func(ctx context.Context) ([]entities.ServiceExecution, error) {
		return c.executions.ListByServiceOrderID(ctx, soID)
	})
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	for _, e := range existing {
		if e.IsActive() {
			return entities.ServiceExecution{}, fmt.Errorf("%w: %s", ErrActiveExecutionExists, e.ID)
		}
	}

	e := entities.NewServiceExecution(uuid.NewString(), soID, mechanicID)
	created, err := retryDo(ctx, c.retry, "execution.create", func(ctx context.Context) (entities.ServiceExecution, error) {
		return c.executions.Create(ctx, e)
	})
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	c.opts.logger.Info().Str("execution_id", created.ID).Str("service_order_id", soID).
		Str("mechanic_id", mechanicID).Msg("execution assigned")
	return created, nil
}

func (c *WorkflowCoordinator) GetExecution(ctx context.Context, executionID string) (entities.ServiceExecution, error) {
	return c.loadExecution(ctx, executionID)
}

func (c *WorkflowCoordinator) StartExecution(ctx context.Context, executionID string) (ExecutionResult, error) {
	return c.transitionExecution(ctx, executionID, (*entities.ServiceExecution).Start, startCascade)
}

func (c *WorkflowCoordinator) CompleteExecution(ctx context.Context, executionID string, actualHours float64, notes string) (ExecutionResult, error) {
	complete := func(e *entities.ServiceExecution) error { return e.Complete(actualHours, notes) }
	return c.transitionExecution(ctx, executionID, complete, completeCascade)
}

func (c *WorkflowCoordinator) transitionBudget(ctx context.Context, budgetID string, apply func(*entities.Budget) error, step cascadeStep) (BudgetResult, error) {
	b, release, err := c.lockBudget(ctx, budgetID)
	if err != nil {
		return BudgetResult{}, err
	}
	defer release()

	from := b.Status
	if err := apply(&b); err != nil {
		c.opts.logger.Info().Err(err).Str("budget_id", b.ID).Str("status", string(from)).
			Str("event", step.eventType).Msg("budget transition refused")
		return BudgetResult{}, err
	}
	saved, err := c.saveBudget(ctx, b)
	if err != nil {
		return BudgetResult{}, err
	}
	c.opts.metrics.ObserveTransition(entities.EntityKindBudget, string(from), string(saved.Status))

	order, outcome := c.cascade(ctx, saved.ServiceOrderID, step)
	c.publish(ctx, step.eventType, entities.EntityKindBudget, saved.ID, saved.ServiceOrderID, outcome, map[string]string{
		"budget_status": string(saved.Status),
		"total":         saved.Total().StringFixed(2),
	})
	return BudgetResult{Budget: saved, ServiceOrder: order, Cascade: outcome}, nil
}

func (c *WorkflowCoordinator) transitionExecution(ctx context.Context, executionID string, apply func(*entities.ServiceExecution) error, step cascadeStep) (ExecutionResult, error) {
	e, err := c.loadExecution(ctx, executionID)
	if err != nil {
		return ExecutionResult{}, err
	}
	release, locked, err := c.opts.lockServiceOrder(ctx, e.ServiceOrderID)
	if err != nil {
		return ExecutionResult{}, err
	}
	defer release()
	if locked {
		if e, err = c.loadExecution(ctx, executionID); err != nil {
			return ExecutionResult{}, err
		}
	}

	from := e.Status
	if err := apply(&e); err != nil {
		c.opts.logger.Info().Err(err).Str("execution_id", e.ID).Str("status", string(from)).
			Str("event", step.eventType).Msg("execution transition refused")
		return ExecutionResult{}, err
	}
	saved, err := retryDo(ctx, c.retry, "execution.save", func(ctx context.Context) (entities.ServiceExecution, error) {
		return c.executions.Save(ctx, e)
	})
	if err != nil {
		return ExecutionResult{}, err
	}
	if saved.ID == "" {
		return ExecutionResult{}, ErrServiceExecutionNotFound
	}
	c.opts.metrics.ObserveTransition(entities.EntityKindServiceExecution, string(from), string(saved.Status))

	order, outcome := c.cascade(ctx, saved.ServiceOrderID, step)
	data := map[string]string{"execution_status": string(saved.Status), "mechanic_id": saved.MechanicID}
	if saved.Status == entities.ServiceExecutionStatusCompleted {
		data["actual_hours"] = fmt.Sprintf("%g", saved.ActualHours)
	}
	c.publish(ctx, step.eventType, entities.EntityKindServiceExecution, saved.ID, saved.ServiceOrderID, outcome, data)
	return ExecutionResult{Execution: saved, ServiceOrder: order, Cascade: outcome}, nil
}

// cascade applies step to the service order. It never returns an error: every failure is
// reported through the outcome.
func (c *WorkflowCoordinator) cascade(ctx context.Context, serviceOrderID string, step cascadeStep) (entities.ServiceOrder, CascadeOutcome) {
	out := CascadeOutcome{Target: entities.EntityKindServiceOrder, TargetID: serviceOrderID, To: string(step.to)}
	defer func() {
		c.opts.metrics.ObserveCascade(step.eventType, out.Outcome())
		evt := c.opts.logger.Info()
		if !out.Applied {
			evt = c.opts.logger.Warn().Err(out.Err).Str("reason", out.Reason)
		}
		evt.Str("event", step.eventType).Str("service_order_id", serviceOrderID).Str("from", out.From).
			Str("to", out.To).Str("outcome", out.Outcome()).Msg("service order cascade")
	}()

	order, err := retryDo(ctx, c.retry, "service_order.get", func(ctx context.Context) (entities.ServiceOrder, error) {
		return c.orders.GetByID(ctx, serviceOrderID)
	})
	if err != nil {
		out.Attempted = true
		out.Reason = "service order could not be loaded"
		out.Err = err
		return entities.ServiceOrder{}, out
	}
	if order.ID == "" {
		out.Reason = "service order not found"
		return entities.ServiceOrder{}, out
	}
	out.From = string(order.Status)

	if len(step.requires) > 0 && !slices.Contains(step.requires, order.Status) {
		out.Reason = fmt.Sprintf("service order is %s, cascade requires %s", order.Status, joinStatuses(step.requires))
		return order, out
	}

	out.Attempted = true
	next := order
	if err := step.apply(&next); err != nil {
		out.Reason = "transition not allowed"
		out.Err = err
		return order, out
	}
	saved, err := retryDo(ctx, c.retry, "service_order.save", func(ctx context.Context) (entities.ServiceOrder, error) {
		return c.orders.Save(ctx, next)
	})
	if err != nil || saved.ID == "" {
		out.Reason = "service order could not be saved"
		out.Err = err
		switch {
		case err == nil:
			out.Err = ErrServiceOrderNotFound
		case errors.Is(err, interfaces.ErrConcurrentUpdate):
			out.Reason = "service order changed concurrently"
		}
		return order, out
	}
	out.Applied = true
	c.opts.metrics.ObserveTransition(entities.EntityKindServiceOrder, out.From, string(saved.Status))
	return saved, out
}

func (c *WorkflowCoordinator) publish(ctx context.Context, eventType string, kind entities.EntityKind, aggregateID, serviceOrderID string, out CascadeOutcome, data map[string]string) {
	if c.publisher == nil {
		return
	}
	event := entities.DomainEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		Level:          entities.EventLevelInfo,
		AggregateKind:  kind,
		AggregateID:    aggregateID,
		ServiceOrderID: serviceOrderID,
		Data:           data,
		OccurredAt:     entities.Now(),
	}
	event.Data["cascade"] = out.Outcome()
	event.Data["cascade_to"] = out.To
	if out.From != "" {
		event.Data["cascade_from"] = out.From
	}
	if out.Applied {
		event.Message = fmt.Sprintf("service order %s moved from %s to %s", serviceOrderID, out.From, out.To)
	} else {
		event.Level = entities.EventLevelWarning
		event.Message = fmt.Sprintf("service order %s not moved to %s: %s", serviceOrderID, out.To, out.Reason)
		if out.Err != nil {
			event.Data["error"] = out.Err.Error()
		}
	}

	err := c.retryErr(ctx, "event.publish", func(ctx context.Context) error {
		return c.publisher.Publish(ctx, event)
	})
	if err != nil {
		c.opts.logger.Error().Err(err).Str("event_id", event.ID).Str("event", eventType).Msg("failed to publish workflow event")
	}
}

func (c *WorkflowCoordinator) retryErr(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if c.retry == nil {
		return fn(ctx)
	}
	return c.retry.WithRetry(ctx, operation, fn)
}

// lockBudget loads the budget, takes its service order lock and reloads it under the lock.
func (c *WorkflowCoordinator) lockBudget(ctx context.Context, budgetID string) (entities.Budget, func(), error) {
	b, err := c.loadBudget(ctx, budgetID)
	if err != nil {
		return entities.Budget{}, nil, err
	}
	release, locked, err := c.opts.lockServiceOrder(ctx, b.ServiceOrderID)
	if err != nil {
		return entities.Budget{}, nil, err
	}
	if locked {
		if b, err = c.loadBudget(ctx, b.ID); err != nil {
			release()
			return entities.Budget{}, nil, err
		}
	}
	return b, release, nil
}

func (c *WorkflowCoordinator) loadBudget(ctx context.Context, budgetID string) (entities.Budget, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := retryDo(ctx, c.retry, "budget.get", func(ctx context.Context) (entities.Budget, error) {
		return c.budgets.GetByID(ctx, budgetID)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (c *WorkflowCoordinator) saveBudget(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	saved, err := retryDo(ctx, c.retry, "budget.save", func(ctx context.Context) (entities.Budget, error) {
		return c.budgets.Save(ctx, b)
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if saved.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return saved, nil
}

func (c *WorkflowCoordinator) loadExecution(ctx context.Context, executionID string) (entities.ServiceExecution, error) {
	executionID = strings.TrimSpace(executionID)
	if executionID == "" {
		return entities.ServiceExecution{}, ErrInvalidServiceExecutionID
	}
	e, err := retryDo(ctx, c.retry, "execution.get", func(ctx context.Context) (entities.ServiceExecution, error) {
		return c.executions.GetByID(ctx, executionID)
	})
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	if e.ID == "" {
		return entities.ServiceExecution{}, ErrServiceExecutionNotFound
	}
	return e, nil
}

func (c *WorkflowCoordinator) loadOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := retryDo(ctx, c.retry, "service_order.get", func(ctx context.Context) (entities.ServiceOrder, error) {
		return c.orders.GetByID(ctx, id)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func joinStatuses(list []entities.ServiceOrderStatus) string {
	parts := make([]string, len(list))
	for i, s := range list {
		parts[i] = string(s)
	}
	return strings.Join(parts, " or ")
}
