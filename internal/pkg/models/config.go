package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Outbox   OutboxConfig   `mapstructure:"outbox"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress     string   `mapstructure:"nsqd_address"`
	LookupdAddrs    []string `mapstructure:"lookupd_addrs"`
	MaxInFlight     int      `mapstructure:"max_in_flight"`
	ConsumerChannel string   `mapstructure:"consumer_channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// WebhookConfig contains payment-gateway webhook configuration.
// Secret is the pre-shared HMAC key; it is injected into the signature
// verifier at construction and never read from global state.
type WebhookConfig struct {
	Secret          string `mapstructure:"secret"`
	SignatureHeader string `mapstructure:"signature_header"`
}

// GatewayConfig maps free-text gateway status tokens onto the canonical
// transaction status domain. The token sets are configuration because a
// second gateway integration needs a different set; matching is
// case-insensitive and unknown tokens leave the transaction pending.
type GatewayConfig struct {
	SuccessTokens []string `mapstructure:"success_tokens"`
	FailureTokens []string `mapstructure:"failure_tokens"`
}

// OutboxConfig contains outbox relay tuning
type OutboxConfig struct {
	PollInterval int `mapstructure:"poll_interval"` // in milliseconds
	BatchSize    int `mapstructure:"batch_size"`
	MaxRetries   int `mapstructure:"max_retries"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
