package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	PersistenceDynamoDB = "dynamodb"
	PersistenceMemory   = "memory"
)

// Config groups the service configuration, read from env vars and optionally a .env/config.env file.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	DynamoDB DynamoDBConfig
	Retry    RetryConfig
	Redis    RedisConfig
	PubSub   PubSubConfig
	Metrics  MetricsConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Env               string
	LogLevel          string
	PersistenceDriver string
}

type HTTPConfig struct {
	Port int
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type DynamoDBConfig struct {
	Region                 string
	AccessKeyID            string
	SecretAccessKey        string
	Endpoint               string // local DynamoDB / LocalStack; empty uses AWS
	ServiceOrdersTable     string
	BudgetsTable           string
	ServiceExecutionsTable string
	StockItemsTable        string
	StockMovementsTable    string
	PaymentsTable          string
}

type RetryConfig struct {
	InitialDelayMS int
	MaxDelayMS     int
	MaxAttempts    int
}

type RedisConfig struct {
	Address    string // empty disables service-order locking
	Password   string
	DB         int
	LockTTLSec int
}

func (c RedisConfig) Enabled() bool { return c.Address != "" }

func (c RedisConfig) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSec) * time.Second
}

type PubSubConfig struct {
	ProjectID string // empty publishes events to the log only
	TopicID   string
}

func (c PubSubConfig) Enabled() bool { return c.ProjectID != "" && c.TopicID != "" }

type MetricsConfig struct {
	Enabled bool
}

type PaymentConfig struct {
	MercadoPagoAccessToken string
	GatewayMock            bool
}

// Load reads the configuration. Environment variables take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:               getString(v, "APP_ENV", "development"),
			LogLevel:          getString(v, "LOG_LEVEL", "info"),
			PersistenceDriver: strings.ToLower(getString(v, "PERSISTENCE_DRIVER", PersistenceDynamoDB)),
		},
		HTTP: HTTPConfig{
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DynamoDB: DynamoDBConfig{
			Region:                 getString(v, "AWS_REGION", "us-east-1"),
			AccessKeyID:            getString(v, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey:        getString(v, "AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:               getString(v, "DYNAMODB_ENDPOINT", ""),
			ServiceOrdersTable:     getString(v, "SERVICE_ORDERS_TABLE", "service_orders"),
			BudgetsTable:           getString(v, "BUDGETS_TABLE", "budgets"),
			ServiceExecutionsTable: getString(v, "SERVICE_EXECUTIONS_TABLE", "service_executions"),
			StockItemsTable:        getString(v, "STOCK_ITEMS_TABLE", "stock_items"),
			StockMovementsTable:    getString(v, "STOCK_MOVEMENTS_TABLE", "stock_movements"),
			PaymentsTable:          getString(v, "PAYMENTS_TABLE", "billing_payments"),
		},
		Retry: RetryConfig{
			InitialDelayMS: getInt(v, "RETRY_INITIAL_DELAY_MS", 1000),
			MaxDelayMS:     getInt(v, "RETRY_MAX_DELAY_MS", 30000),
			MaxAttempts:    getInt(v, "RETRY_MAX_ATTEMPTS", 3),
		},
		Redis: RedisConfig{
			Address:    getString(v, "REDIS_ADDRESS", ""),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			LockTTLSec: getInt(v, "LOCK_TTL_SECONDS", 30),
		},
		PubSub: PubSubConfig{
			ProjectID: getString(v, "PUBSUB_PROJECT_ID", ""),
			TopicID:   getString(v, "PUBSUB_TOPIC_ID", "workflow-events"),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
		Payment: PaymentConfig{
			MercadoPagoAccessToken: getString(v, "MERCADOPAGO_ACCESS_TOKEN", ""),
			GatewayMock:            getBool(v, "PAYMENT_GATEWAY_MOCK", false),
		},
	}

	switch cfg.App.PersistenceDriver {
	case PersistenceDynamoDB, PersistenceMemory:
	default:
		return nil, fmt.Errorf("config: unsupported PERSISTENCE_DRIVER %q", cfg.App.PersistenceDriver)
	}
	if cfg.Redis.LockTTLSec <= 0 {
		cfg.Redis.LockTTLSec = 30
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
