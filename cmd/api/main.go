package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mecanica_xpto_workflow/internal/adapter/http/routes"
	"mecanica_xpto_workflow/pkg/config"
	"mecanica_xpto_workflow/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Vehicle Repair Workflow API
// @version         1.0
// @description     Service orders, budgets, executions, stock and budget payments for a vehicle repair shop.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, l); err != nil {
		l.Fatal().Err(err).Msg("server stopped")
	}
}
