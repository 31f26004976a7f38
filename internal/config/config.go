package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	ActivityMemory   = "memory"
	ActivityDynamoDB = "dynamodb"

	NotifyNone  = "none"
	NotifyRedis = "redis"
	NotifyMQTT  = "mqtt"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns a lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ActivityTable   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Stream   string
}

type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

type Config struct {
	HTTPAddr    string
	ServiceName string

	StoreBackend    string
	ActivityBackend string
	NotifyTransport string

	Database DatabaseConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	MQTT     MQTTConfig

	JWTSecret       string
	PermissionsFile string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	Log struct {
		Level  string
		Format string
	}
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.ServiceName = getEnv("SERVICE_NAME", "fieldops")

	cfg.StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", StorePostgres))
	cfg.ActivityBackend = strings.ToLower(getEnv("ACTIVITY_BACKEND", ActivityDynamoDB))
	cfg.NotifyTransport = strings.ToLower(getEnv("NOTIFY_TRANSPORT", NotifyNone))

	port, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	cfg.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		Database: getEnv("DB_NAME", "fieldops"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	cfg.DynamoDB = DynamoDBConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		ActivityTable:   getEnv("ACTIVITY_TABLE", "activity_log"),
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
		Stream:   getEnv("REDIS_NOTIFY_STREAM", "fieldops:notifications"),
	}

	cfg.MQTT = MQTTConfig{
		Broker:      getEnv("MQTT_BROKER", "tcp://localhost:1883"),
		ClientID:    getEnv("MQTT_CLIENT_ID", "fieldops-api"),
		Username:    os.Getenv("MQTT_USERNAME"),
		Password:    os.Getenv("MQTT_PASSWORD"),
		TopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "fieldops"),
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.PermissionsFile = os.Getenv("PERMISSIONS_FILE")

	cfg.MercadoPagoAccessToken = os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	cfg.PaymentGatewayMock = envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MERCADOPAGO_MOCK")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.ActivityBackend {
	case ActivityMemory, ActivityDynamoDB:
	default:
		return fmt.Errorf("unknown ACTIVITY_BACKEND %q", c.ActivityBackend)
	}
	switch c.NotifyTransport {
	case NotifyNone, NotifyRedis, NotifyMQTT:
	default:
		return fmt.Errorf("unknown NOTIFY_TRANSPORT %q", c.NotifyTransport)
	}
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
