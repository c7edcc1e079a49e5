package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/raditp/dompet/internal/pkg/models"
)

// InitConfig loads configuration for a service. Values come from the
// config file (CONFIG_PATH, defaulting to ./config.yaml) with
// environment variables taking precedence, e.g. DATABASE_HOST overrides
// database.host.
func InitConfig(serviceName string) *models.Config {
	v := viper.New()

	setDefaults(v, serviceName)

	v.SetConfigFile(getConfigPath())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file not loaded, using env/defaults: %v", err)
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return cfg
}

func getConfigPath() string {
	v := viper.New()
	v.AutomaticEnv()
	if path := v.GetString("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func setDefaults(v *viper.Viper, serviceName string) {
	v.SetDefault("app.name", serviceName)
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "dompet")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.nsqd_address", "localhost:4150")
	v.SetDefault("nsq.max_in_flight", 10)
	v.SetDefault("nsq.consumer_channel", "wallet")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "dompet")

	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.signature_header", "X-PG-Signature")

	// Token sets observed for the current gateway; a second gateway
	// integration overrides these, never the code.
	v.SetDefault("gateway.success_tokens", []string{"SUCCESS", "PAID", "CAPTURED"})
	v.SetDefault("gateway.failure_tokens", []string{"FAILED"})

	v.SetDefault("outbox.poll_interval", 500)
	v.SetDefault("outbox.batch_size", 50)
	v.SetDefault("outbox.max_retries", 3)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
