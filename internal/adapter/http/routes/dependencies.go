package routes

import (
	"context"
	"fmt"
	"mecanica_xpto_workflow/internal/adapter/http/handlers"
	"mecanica_xpto_workflow/internal/adapter/persistence/memory"
	"mecanica_xpto_workflow/internal/adapter/persistence/repository"
	"mecanica_xpto_workflow/internal/infrastructure/database"
	"mecanica_xpto_workflow/internal/infrastructure/events"
	"mecanica_xpto_workflow/internal/infrastructure/lock"
	"mecanica_xpto_workflow/internal/infrastructure/metrics"
	"mecanica_xpto_workflow/internal/infrastructure/payments"
	"mecanica_xpto_workflow/internal/usecase"
	"mecanica_xpto_workflow/internal/usecase/interfaces"
	"mecanica_xpto_workflow/pkg/config"
	pkglogger "mecanica_xpto_workflow/pkg/logger"
	"mecanica_xpto_workflow/pkg/retry"
	"time"

	"github.com/rs/zerolog"
)

// lockWait is how long an operation waits for a service order held by another writer.
const lockWait = 5 * time.Second

type repositories struct {
	orders     interfaces.IServiceOrderRepository
	budgets    interfaces.IBudgetRepository
	executions interfaces.IServiceExecutionRepository
	stock      interfaces.IStockItemRepository
	payments   interfaces.IBillingPaymentRepository
}

type dependencies struct {
	handlers Handlers
	closers  []func() error
}

func (d *dependencies) close(logger zerolog.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			logger.Warn().Err(err).Msg("failed to close dependency")
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	workflowMetrics := metrics.NewWorkflowMetrics(cfg.Metrics.Enabled)
	policy, err := retry.NewPolicy(retry.Config{
		InitialDelay: time.Duration(cfg.Retry.InitialDelayMS) * time.Millisecond,
		MaxDelay:     time.Duration(cfg.Retry.MaxDelayMS) * time.Millisecond,
		MaxAttempts:  cfg.Retry.MaxAttempts,
	}, pkglogger.Component(logger, "retry"), retry.WithObserver(func(operation string, _ int, retryable bool) {
		workflowMetrics.ObserveRetryAttempt(operation, retryable)
	}))
	if err != nil {
		return nil, err
	}

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := []usecase.Option{usecase.WithLogger(logger), usecase.WithMetrics(workflowMetrics)}
	if cfg.Redis.Enabled() {
		rdb, err := lock.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			deps.close(logger)
			return nil, err
		}
		deps.closers = append(deps.closers, rdb.Close)
		opts = append(opts, usecase.WithLocker(lock.NewRedisLocker(rdb, cfg.Redis.LockTTL(), lockWait)))
		logger.Info().Str("redis", cfg.Redis.Address).Msg("service order locking enabled")
	}

	publisher, err := buildPublisher(ctx, cfg, logger, deps)
	if err != nil {
		deps.close(logger)
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.Payment.GatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.MercadoPagoAccessToken, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		} else {
			gateway = mpGateway
		}
	}

	ledger := usecase.NewStockLedger(repos.stock, policy, opts...)
	coordinator := usecase.NewWorkflowCoordinator(repos.orders, repos.budgets, repos.executions, ledger, publisher, policy, opts...)
	serviceOrders := usecase.NewServiceOrderUseCase(repos.orders, policy, opts...)
	paymentUseCase := usecase.NewBillingPaymentUseCase(repos.payments, repos.budgets, gateway, policy,
		append(opts, usecase.WithPaymentMock(cfg.Payment.GatewayMock))...)

	deps.handlers = Handlers{
		ServiceOrders: handlers.NewServiceOrderHandler(serviceOrders),
		Budgets:       handlers.NewBudgetHandler(coordinator),
		Executions:    handlers.NewExecutionHandler(coordinator),
		Stock:         handlers.NewStockHandler(ledger),
		Payments:      handlers.NewBillingPaymentHandler(paymentUseCase, cfg.Payment.GatewayMock, logger),
		Metrics:       workflowMetrics.Handler(),
	}
	return deps, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.App.PersistenceDriver == config.PersistenceMemory {
		return repositories{
			orders:     memory.NewServiceOrderRepository(),
			budgets:    memory.NewBudgetRepository(),
			executions: memory.NewServiceExecutionRepository(),
			stock:      memory.NewStockItemRepository(),
			payments:   memory.NewBillingPaymentRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	t := cfg.DynamoDB
	return repositories{
		orders:     repository.NewServiceOrderDynamoRepository(ddb, t.ServiceOrdersTable),
		budgets:    repository.NewBudgetDynamoRepository(ddb, t.BudgetsTable),
		executions: repository.NewServiceExecutionDynamoRepository(ddb, t.ServiceExecutionsTable),
		stock:      repository.NewStockItemDynamoRepository(ddb, t.StockItemsTable, t.StockMovementsTable),
		payments:   repository.NewBillingPaymentDynamoRepository(ddb, t.PaymentsTable),
	}, nil
}

// buildPublisher always logs events; Pub/Sub is added when a project and topic are configured.
func buildPublisher(ctx context.Context, cfg *config.Config, logger zerolog.Logger, deps *dependencies) (interfaces.IEventPublisher, error) {
	logPublisher := events.NewLogPublisher(pkglogger.Component(logger, "events"))
	if !cfg.PubSub.Enabled() {
		return logPublisher, nil
	}
	pubsubPublisher, err := events.NewPubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, pkglogger.Component(logger, "events"))
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, pubsubPublisher.Close)
	logger.Info().Str("project", cfg.PubSub.ProjectID).Str("topic", cfg.PubSub.TopicID).Msg("pubsub event publishing enabled")
	return events.Fanout{logPublisher, pubsubPublisher}, nil
}
