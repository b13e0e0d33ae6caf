package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded into the process environment, when present, before
// the configuration is read.
const DotEnvFile = ".env"

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// rule cache, change events, background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// DefaultActor is recorded as updatedBy when a request carries no bearer token
		DefaultActor string `env:"HTTP_DEFAULT_ACTOR" env-default:"system" yaml:"defaultActor"`
		// CORSOrigins are the browser origins allowed to call the API; "*" allows any
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
		// PprofEnabled exposes the runtime profiles under /debug/pprof
		PprofEnabled bool `env:"HTTP_PPROF_ENABLED" env-default:"true" yaml:"pprofEnabled"`
	} `yaml:"http"`

	// JWT contains the RS256 key pair used to verify and issue bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded key verifying bearer tokens. Requests are
		// not authenticated when it is empty.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"bincatalog" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains the rule resolution cache settings
	Redis struct {
		// Enabled turns the cache on; resolution always reads the database when false
		Enabled bool `env:"REDIS_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the host:port of the Redis server
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for Redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the Redis logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// PoolSize is the maximum number of socket connections
		PoolSize int `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		// TTL bounds how long a resolution page is served from the cache
		TTL time.Duration `env:"REDIS_TTL" env-default:"1m" yaml:"ttl"`
	} `yaml:"redis"`

	// Kafka contains the catalog change event settings
	Kafka struct {
		// Enabled turns publication on; changes are only logged when false
		Enabled bool `env:"KAFKA_ENABLED" env-default:"false" yaml:"enabled"`
		// Brokers are the seed brokers
		Brokers []string `env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:"," yaml:"brokers"`
		// Topic receives every catalog change
		Topic string `env:"KAFKA_TOPIC" env-default:"bincatalog.changes" yaml:"topic"`
		// ClientID identifies the producer
		ClientID string `env:"KAFKA_CLIENT_ID" env-default:"bincatalog" yaml:"clientId"`
		// ProduceTimeout bounds a single publication
		ProduceTimeout time.Duration `env:"KAFKA_PRODUCE_TIMEOUT" env-default:"10s" yaml:"produceTimeout"`
	} `yaml:"kafka"`

	// Worker contains the background job settings
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a catalog change job is tried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"10" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from DotEnvFile, when it exists, override the yaml values unless
// already set in the environment.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load %s: %w", DotEnvFile, err)
	}

	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
