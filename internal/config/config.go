package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storefront Storefront `validate:"required"`

	Gateway Gateway `validate:"required"`

	Redis Redis `validate:"required"`

	Mailbox Mailbox `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	Checkout Checkout `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	// PublicBaseURL is where the gateway and the storefront reach this service.
	PublicBaseURL string `validate:"required,url"`

	// Per client address.
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`

	// TrustProxy takes the client address from X-Forwarded-For and X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Storefront struct {
	BaseURL    string        `validate:"required,url"`
	Timeout    time.Duration `validate:"gt=0"`
	MaxRetries int           `validate:"gte=0,lte=10"`

	BreakerTimeout time.Duration `validate:"gte=0"`
}

type Gateway struct {
	KeyID        string        `validate:"required"`
	SDKURL       string        `validate:"required,url"`
	CheckoutURL  string        `validate:"required,url"`
	Currency     string        `validate:"required,len=3"`
	MerchantName string        `validate:"required"`
	AttemptTTL   time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Mailbox struct {
	Key          string        `validate:"required"`
	TTL          time.Duration `validate:"gt=0"`
	PollInterval time.Duration `validate:"gt=0"`
}

type Kafka struct {
	GroupID         string   `validate:"required"`
	Brokers         []string `validate:"required,min=1,dive,hostname_port"`
	CompletionTopic string   `validate:"required"`
	EventsTopic     string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Checkout struct {
	// SessionTTL closes sessions nobody touched for that long.
	SessionTTL time.Duration `validate:"gt=0"`
	// ReceiptsLimit caps GET /receipts.
	ReceiptsLimit int `validate:"gt=0,lte=1000"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:          env("HOST", "localhost"),
			Port:          env("PORT", "8080"),
			PublicBaseURL: env("PUBLIC_BASE_URL", "http://localhost:8080"),

			RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 20),
			RateLimitBurst: envInt("RATE_LIMIT_BURST", 40),
			TrustProxy:     envBool("HTTP_TRUST_PROXY", false),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:5173"), ","),
		},

		Storefront: Storefront{
			BaseURL:        env("STOREFRONT_API_URL", "http://localhost:3000/api"),
			Timeout:        envDuration("STOREFRONT_TIMEOUT", 10*time.Second),
			MaxRetries:     envInt("STOREFRONT_MAX_RETRIES", 2),
			BreakerTimeout: envDuration("STOREFRONT_BREAKER_TIMEOUT", 30*time.Second),
		},

		Gateway: Gateway{
			KeyID:        env("GATEWAY_KEY_ID", ""),
			SDKURL:       env("GATEWAY_SDK_URL", "https://checkout.razorpay.com/v1/checkout.js"),
			CheckoutURL:  env("GATEWAY_CHECKOUT_URL", "https://api.razorpay.com/v1/checkout/embedded"),
			Currency:     env("GATEWAY_CURRENCY", "INR"),
			MerchantName: env("GATEWAY_MERCHANT_NAME", "Buy Nothing"),
			AttemptTTL:   envDuration("GATEWAY_ATTEMPT_TTL", 15*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Mailbox: Mailbox{
			Key:          env("MAILBOX_KEY", "lastOrder"),
			TTL:          envDuration("MAILBOX_TTL", time.Hour),
			PollInterval: envDuration("MAILBOX_POLL_INTERVAL", 500*time.Millisecond),
		},

		Kafka: Kafka{
			GroupID:         env("KAFKA_GROUP_ID", "checkout-service"),
			CompletionTopic: env("KAFKA_COMPLETION_TOPIC", "checkout-completions"),
			EventsTopic:     env("KAFKA_EVENTS_TOPIC", "checkout-events"),
			Brokers:         strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "receipts"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 100),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		Checkout: Checkout{
			SessionTTL:    envDuration("CHECKOUT_SESSION_TTL", time.Hour),
			ReceiptsLimit: envInt("RECEIPTS_LIMIT", 50),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
