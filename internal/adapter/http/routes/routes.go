package routes

import (
	"context"
	"errors"
	_ "mecanica_xpto_workflow/docs" // generated by swag init
	"mecanica_xpto_workflow/internal/adapter/http/handlers"
	"mecanica_xpto_workflow/pkg/config"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router exposes.
type Handlers struct {
	ServiceOrders *handlers.ServiceOrderHandler
	Budgets       *handlers.BudgetHandler
	Executions    *handlers.ExecutionHandler
	Stock         *handlers.StockHandler
	Payments      *handlers.BillingPaymentHandler
	Metrics       http.Handler
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close(logger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           NewRouter(deps.handlers, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("persistence", cfg.App.PersistenceDriver).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter builds the gin engine with the public /v1 routes, swagger and metrics.
func NewRouter(h Handlers, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, h.ServiceOrders)
	addBudgetRoutes(v1, h.Budgets)
	addExecutionRoutes(v1, h.Executions)
	addStockRoutes(v1, h.Stock)
	addPaymentRoutes(v1, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine, logger zerolog.Logger) {
	log := logger.With().Str("component", "http").Logger()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
