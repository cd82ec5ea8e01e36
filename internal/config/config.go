package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`

	Secret string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqAccountEventsExchange string `env:"RABBITMQ_ACCOUNT_EVENTS_EXCHANGE" envDefault:"account-events"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	AwsRegion                  string `env:"AWS_REGION,required"`
	AwsAccessKey               string `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey               string `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender             string `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailActivationTemplate string `env:"AWS_EMAIL_ACTIVATION_TEMPLATE,required"`

	SentryDsn string `env:"SENTRY_DSN"`

	Port           int      `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return cfg, nil
}
