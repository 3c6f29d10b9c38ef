package repository

import (
	"context"
	"sort"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
)

const executionsServiceOrderIndex = "service_order_id-index"

type serviceExecutionItem struct {
	ID              string  `dynamodbav:"id"`
	Status          string  `dynamodbav:"status"`
	ServiceOrderID  string  `dynamodbav:"service_order_id"`
	MechanicID      string  `dynamodbav:"mechanic_id"`
	ActualHours     float64 `dynamodbav:"actual_hours"`
	CompletionNotes string  `dynamodbav:"completion_notes,omitempty"`
	StartedAt       string  `dynamodbav:"started_at,omitempty"`
	CompletedAt     string  `dynamodbav:"completed_at,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
	Version         int64   `dynamodbav:"version"`
}

// ServiceExecutionDynamoRepository persists ServiceExecution entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
type ServiceExecutionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceExecutionRepository = (*ServiceExecutionDynamoRepository)(nil)

func NewServiceExecutionDynamoRepository(ddb DynamoAPI, tableName string) *ServiceExecutionDynamoRepository {
	return &ServiceExecutionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceExecutionDynamoRepository) Create(ctx context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toServiceExecutionItem(e), conditionNew)
	if err != nil {
		return entities.ServiceExecution{}, err
	}
	if !ok {
		return entities.ServiceExecution{}, ErrAlreadyExists
	}
	return e, nil
}

func (r *ServiceExecutionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceExecution, error) {
	it, ok, err := getItem[serviceExecutionItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.ServiceExecution{}, err
	}
	return fromServiceExecutionItem(it), nil
}

func (r *ServiceExecutionDynamoRepository) Save(ctx context.Context, e entities.ServiceExecution) (entities.ServiceExecution, error) {
	next := e
	next.Version = e.Version + 1
	ok, err := putVersioned(ctx, r.ddb, r.tableName, toServiceExecutionItem(next), e.Version)
	if err != nil || !ok {
		return entities.ServiceExecution{}, err
	}
	return next, nil
}

func (r *ServiceExecutionDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ServiceExecution, error) {
	items, err := queryIndex[serviceExecutionItem](ctx, r.ddb, r.tableName, executionsServiceOrderIndex, "service_order_id", serviceOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceExecution, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceExecutionItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func toServiceExecutionItem(e entities.ServiceExecution) serviceExecutionItem {
	return serviceExecutionItem{
		ID:              e.ID,
		Status:          string(e.Status),
		ServiceOrderID:  e.ServiceOrderID,
		MechanicID:      e.MechanicID,
		ActualHours:     e.ActualHours,
		CompletionNotes: e.CompletionNotes,
		StartedAt:       formatTimePtr(e.StartedAt),
		CompletedAt:     formatTimePtr(e.CompletedAt),
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
		Version:         e.Version,
	}
}

func fromServiceExecutionItem(it serviceExecutionItem) entities.ServiceExecution {
	return entities.ServiceExecution{
		ID:              it.ID,
		Status:          entities.ServiceExecutionStatus(it.Status),
		ServiceOrderID:  it.ServiceOrderID,
		MechanicID:      it.MechanicID,
		ActualHours:     it.ActualHours,
		CompletionNotes: it.CompletionNotes,
		StartedAt:       parseTimePtr(it.StartedAt),
		CompletedAt:     parseTimePtr(it.CompletedAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
}
