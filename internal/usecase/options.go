package usecase

import (
	"context"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/retry"

	"github.com/rs/zerolog"
)

// Option configures the optional collaborators shared by the use cases.
type Option func(*options)

type options struct {
	locker      interfaces.ILocker
	metrics     interfaces.IWorkflowMetrics
	logger      zerolog.Logger
	paymentMock bool
}

// WithLocker serializes operations per service order. Without it no locking happens.
func WithLocker(l interfaces.ILocker) Option {
	return func(o *options) { o.locker = l }
}

func WithMetrics(m interfaces.IWorkflowMetrics) Option {
	return func(o *options) { o.metrics = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPaymentMock skips the payment gateway and approves payments locally.
func WithPaymentMock(enabled bool) Option {
	return func(o *options) { o.paymentMock = enabled }
}

func buildOptions(component string, opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = noopMetrics{}
	}
	o.logger = o.logger.With().Str("component", component).Logger()
	return o
}

// lockServiceOrder takes the service-order lock when a locker is configured.
// locked reports whether the caller must reload the aggregates it read before locking.
func (o options) lockServiceOrder(ctx context.Context, serviceOrderID string) (release func(), locked bool, err error) {
	if o.locker == nil {
		return func() {}, false, nil
	}
	unlock, err := o.locker.Lock(ctx, serviceOrderLockKey(serviceOrderID))
	if err != nil {
		return nil, false, err
	}
	return func() {
		if unlock == nil {
			return
		}
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			o.logger.Warn().Err(err).Str("service_order_id", serviceOrderID).Msg("failed to release service order lock")
		}
	}, true, nil
}

func serviceOrderLockKey(id string) string {
	return "service-order:" + id
}

type noopMetrics struct{}

func (noopMetrics) ObserveTransition(entities.EntityKind, string, string) {}
func (noopMetrics) ObserveCascade(string, string)                         {}
func (noopMetrics) ObserveStockMovement(entities.MovementType, bool)      {}
func (noopMetrics) ObserveRetryAttempt(string, bool)                      {}

// retryDo runs a repository call through the policy; a nil policy calls fn once.
func retryDo[T any](ctx context.Context, p *retry.Policy, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}
	return retry.Do(ctx, p, operation, fn)
}
