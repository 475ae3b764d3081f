package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

const EnvDevelopment = "dev"

// Config holds application configuration values.
type Config struct {
	LogLevel  string    `env:"LOG_LEVEL" envDefault:"info"`
	App       App       `envPrefix:"APP_"`
	HTTP      HTTP      `envPrefix:"HTTP_"`
	Mongo     Mongo     `envPrefix:"MONGODB_"`
	JWT       JWT       `envPrefix:"JWT_"`
	SMTP      SMTP      `envPrefix:"EMAIL_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Storage   Storage   `envPrefix:"MINIO_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	OAuth     OAuth     `envPrefix:"GOOGLE_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// App contains user-facing application settings.
type App struct {
	ProjectName                string `env:"PROJECT_NAME" envDefault:"BazaarHub"`
	Environment                string `env:"ENV" envDefault:"dev"`
	BaseURL                    string `env:"BASE_URL" envDefault:"http://localhost:3000"`
	AccountConfirmationURL     string `env:"ACCOUNT_CONFIRMATION_URL" envDefault:"http://localhost:3000/api/v1/users/confirm-account"`
	ResetPasswordURL           string `env:"RESET_PASSWORD_URL" envDefault:"http://localhost:3000/api/v1/users/reset-password"`
	ChangeEmailConfirmationURL string `env:"CHANGE_EMAIL_CONFIRMATION_URL" envDefault:"http://localhost:3000/api/v1/users/confirm-change-email"`
	DefaultAvatarURL           string `env:"DEFAULT_AVATAR_URL" envDefault:"https://robohash.org/420f2159f7e162ecf561bce8221c732a?set=set4&bgset=&size=400x400"`
}

type HTTP struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

type Mongo struct {
	URI          string `env:"URI" envDefault:"mongodb://localhost:27017"`
	DBName       string `env:"DB_NAME" envDefault:"bazaarhub"`
	Transactions bool   `env:"TRANSACTIONS" envDefault:"false"`
}

// JWT contains token signing parameters.
type JWT struct {
	AccessSecret  string        `env:"ACCESS_SECRET" envDefault:"dev-access-secret"`
	RefreshSecret string        `env:"REFRESH_SECRET" envDefault:"dev-refresh-secret"`
	AccessTTL     time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
}

type SMTP struct {
	Host        string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port        string `env:"PORT" envDefault:"587"`
	Username    string `env:"USERNAME"`
	AppPassword string `env:"APP_PASSWORD"`
	From        string `env:"FROM" envDefault:"no-reply@bazaarhub.local"`
}

// Redis is optional; an empty URL disables the product cache.
type Redis struct {
	URL string        `env:"URL"`
	TTL time.Duration `env:"TTL" envDefault:"30m"`
}

// Storage is optional; an empty endpoint disables image uploads.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"bazaarhub-images"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	PublicURL string `env:"PUBLIC_URL"`
}

// Kafka is optional; no brokers disables order events.
type Kafka struct {
	Brokers    []string `env:"BROKERS"`
	OrderTopic string   `env:"ORDER_TOPIC" envDefault:"orders"`
}

type OAuth struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

type RateLimit struct {
	AuthPerMinute float64 `env:"AUTH_PER_MINUTE" envDefault:"5"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetProjectName() string { return c.App.ProjectName }

func (c *Config) GetEnvironment() string { return c.App.Environment }

func (c *Config) GetAppBaseURL() string { return c.App.BaseURL }

func (c *Config) GetAccountConfirmationURL() string { return c.App.AccountConfirmationURL }

func (c *Config) GetResetPasswordURL() string { return c.App.ResetPasswordURL }

func (c *Config) GetChangeEmailConfirmationURL() string { return c.App.ChangeEmailConfirmationURL }

func (c *Config) GetDefaultAvatarURL() string { return c.App.DefaultAvatarURL }

// IsDevelopment reports whether seed endpoints are allowed.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}
