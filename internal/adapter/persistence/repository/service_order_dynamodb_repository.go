package repository

import (
	"context"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
)

type serviceOrderItem struct {
	ID                 string `dynamodbav:"id"`
	Status             string `dynamodbav:"status"`
	RequestDate        string `dynamodbav:"request_date"`
	DeliveryDate       string `dynamodbav:"delivery_date,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`
	Notes              string `dynamodbav:"notes,omitempty"`
	ClientID           string `dynamodbav:"client_id"`
	VehicleID          string `dynamodbav:"vehicle_id"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	Version            int64  `dynamodbav:"version"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb DynamoAPI, tableName string) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toServiceOrderItem(o), conditionNew)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !ok {
		return entities.ServiceOrder{}, ErrAlreadyExists
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	it, ok, err := getItem[serviceOrderItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// Save replaces an existing order still stored at o.Version. A missing order yields a zero value.
func (r *ServiceOrderDynamoRepository) Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	next := o
	next.Version = o.Version + 1
	ok, err := putVersioned(ctx, r.ddb, r.tableName, toServiceOrderItem(next), o.Version)
	if err != nil || !ok {
		return entities.ServiceOrder{}, err
	}
	return next, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	return serviceOrderItem{
		ID:                 o.ID,
		Status:             string(o.Status),
		RequestDate:        formatTime(o.RequestDate),
		DeliveryDate:       formatTimePtr(o.DeliveryDate),
		CancellationReason: o.CancellationReason,
		Notes:              o.Notes,
		ClientID:           o.ClientID,
		VehicleID:          o.VehicleID,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
		Version:            o.Version,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                 it.ID,
		Status:             entities.ServiceOrderStatus(it.Status),
		RequestDate:        parseTime(it.RequestDate),
		DeliveryDate:       parseTimePtr(it.DeliveryDate),
		CancellationReason: it.CancellationReason,
		Notes:              it.Notes,
		ClientID:           it.ClientID,
		VehicleID:          it.VehicleID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		Version:            it.Version,
	}
}
