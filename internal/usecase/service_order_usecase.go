package usecase

import (
	"context"
	"errors"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/retry"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrServiceOrderNotFound  = errors.New("service order not found")
	ErrInvalidServiceOrderID = errors.New("invalid service order id")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidOrigin         = errors.New("invalid service order origin")
)

type CreateServiceOrderInput struct {
	ClientID  string
	VehicleID string
	Notes     string
	Origin    entities.ServiceOrderOrigin
}

// IServiceOrderUseCase covers the service order transitions that are not driven by a
// budget or an execution: intake, diagnosis, delivery, rejection, cancellation and the
// administrative status override.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	MarkReceived(ctx context.Context, id string) (entities.ServiceOrder, error)
	MarkInDiagnosis(ctx context.Context, id string) (entities.ServiceOrder, error)
	MarkDelivered(ctx context.Context, id string) (entities.ServiceOrder, error)
	Reject(ctx context.Context, id string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id, reason string) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, reason string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo  interfaces.IServiceOrderRepository
	retry *retry.Policy
	opts  options
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, policy *retry.Policy, opts ...Option) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, retry: policy, opts: buildOptions("service_order", opts)}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	clientID := strings.TrimSpace(in.ClientID)
	vehicleID := strings.TrimSpace(in.VehicleID)
	if clientID == "" {
		return entities.ServiceOrder{}, ErrInvalidClientID
	}
	if vehicleID == "" {
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	}
	origin := in.Origin
	if origin == "" {
		origin = entities.ServiceOrderOriginClient
	}
	if origin != entities.ServiceOrderOriginClient && origin != entities.ServiceOrderOriginEmployee {
		return entities.ServiceOrder{}, ErrInvalidOrigin
	}

	o := entities.NewServiceOrder(uuid.NewString(), clientID, vehicleID, in.Notes, origin)
	created, err := retryDo(ctx, u.retry, "service_order.create", func(ctx context.Context) (entities.ServiceOrder, error) {
		return u.repo.Create(ctx, o)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.opts.logger.Info().Str("service_order_id", created.ID).Str("status", string(created.Status)).
		Str("origin", string(origin)).Msg("service order created")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := retryDo(ctx, u.retry, "service_order.get", func(ctx context.Context) (entities.ServiceOrder, error) {
		return u.repo.GetByID(ctx, id)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) MarkReceived(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, (*entities.ServiceOrder).MarkReceived)
}

func (u *ServiceOrderUseCase) MarkInDiagnosis(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, (*entities.ServiceOrder).MarkInDiagnosis)
}

func (u *ServiceOrderUseCase) MarkDelivered(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, (*entities.ServiceOrder).MarkDelivered)
}

func (u *ServiceOrderUseCase) Reject(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, (*entities.ServiceOrder).MarkRejected)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id, reason string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, func(o *entities.ServiceOrder) error { return o.Cancel(reason) })
}

// UpdateStatus is the manual correction path for cascades that did not apply.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, reason string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, func(o *entities.ServiceOrder) error { return o.UpdateStatus(status, reason) })
}

func (u *ServiceOrderUseCase) transition(ctx context.Context, id string, apply func(*entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	release, locked, err := u.opts.lockServiceOrder(ctx, o.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	defer release()
	if locked {
		if o, err = u.GetByID(ctx, o.ID); err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	from := o.Status
	if err := apply(&o); err != nil {
		return entities.ServiceOrder{}, err
	}
	saved, err := retryDo(ctx, u.retry, "service_order.save", func(ctx context.Context) (entities.ServiceOrder, error) {
		return u.repo.Save(ctx, o)
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if saved.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	u.opts.metrics.ObserveTransition(entities.EntityKindServiceOrder, string(from), string(saved.Status))
	u.opts.logger.Info().Str("service_order_id", saved.ID).Str("from", string(from)).
		Str("to", string(saved.Status)).Msg("service order transition")
	return saved, nil
}
