package config

import (
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI                    string
	Database               string
	AppName                string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	URL             string
	AppID           string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	URL       string
	Password  string
	DB        int
	PoolSize  int
	KeyPrefix string
}

type OutboxConfig struct {
	BatchSize   int
	Interval    time.Duration
	MaxAttempts int
}

type HTTPConfig struct {
	Port          string
	BindInterface string
	RateLimit     int
	RateWindow    time.Duration
}

type CacheConfig struct {
	ProductTTL time.Duration
	InvoiceTTL time.Duration
}

type IdempotencyConfig struct {
	TTL          time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// TaxConfig selects the tax policy used for invoicing: "default" for per-type rates,
// "flat" for a single rate in basis points.
type TaxConfig struct {
	Policy          string
	FlatBasisPoints int64
	FlatDescription string
}

type SystemConfig struct {
	DefaultClientID      string
	SuggestionCandidates int64
}

type Config struct {
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Outbox      OutboxConfig
	HTTP        HTTPConfig
	Logger      LoggerConfig
	Cache       CacheConfig
	Idempotency IdempotencyConfig
	Tax         TaxConfig
	System      SystemConfig
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

func exchange(name string) ExchangeConfig {
	return ExchangeConfig{
		Name:       name,
		Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
		AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
	}
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "sales"),
			AppName:                getStringEnv("MONGO_APP_NAME", "sales"),
			Timeout:                time.Duration(getIntEnv("MONGO_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 100)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			ConnectTimeout:         time.Duration(getIntEnv("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			ServerSelectionTimeout: time.Duration(getIntEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5)) * time.Second,
		},
		Redis: RedisConfig{
			URL:       getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password:  getStringEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			PoolSize:  getIntEnv("REDIS_POOL_SIZE", 0),
			KeyPrefix: getStringEnv("REDIS_KEY_PREFIX", "sales"),
		},
		Outbox: OutboxConfig{
			BatchSize:   getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:    time.Duration(getIntEnv("OUTBOX_INTERVAL", 500)) * time.Millisecond,
			MaxAttempts: getIntEnv("OUTBOX_MAX_ATTEMPTS", 5),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			RateLimit:     getIntEnv("HTTP_RATE_LIMIT", 100),
			RateWindow:    getDurationEnv("HTTP_RATE_WINDOW", time.Minute),
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			AppID:      getStringEnv("RABBITMQ_APP_ID", "sales"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			ExchangeConfigs: []ExchangeConfig{
				exchange("exchange.reservation"),
				exchange("exchange.invoice"),
				exchange("exchange.product"),
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "sales"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
		Cache: CacheConfig{
			ProductTTL: getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),
			InvoiceTTL: getDurationEnv("CACHE_INVOICE_TTL", 15*time.Minute),
		},
		Idempotency: IdempotencyConfig{
			TTL:          getDurationEnv("IDEMPOTENCY_TTL", 24*time.Hour),
			PollInterval: getDurationEnv("IDEMPOTENCY_POLL_INTERVAL", 100*time.Millisecond),
			PollTimeout:  getDurationEnv("IDEMPOTENCY_POLL_TIMEOUT", 5*time.Second),
		},
		Tax: TaxConfig{
			Policy:          getStringEnv("TAX_POLICY", "default"),
			FlatBasisPoints: int64(getIntEnv("TAX_FLAT_RATE_BP", 2300)),
			FlatDescription: getStringEnv("TAX_FLAT_DESCRIPTION", ""),
		},
		System: SystemConfig{
			DefaultClientID:      getStringEnv("SYSTEM_CLIENT_ID", ""),
			SuggestionCandidates: int64(getIntEnv("SUGGESTION_CANDIDATES", 50)),
		},
	}
}
