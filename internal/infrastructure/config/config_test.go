package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "BazaarHub", cfg.App.ProjectName)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "orders", cfg.Kafka.OrderTopic)
	assert.Equal(t, float64(5), cfg.RateLimit.AuthPerMinute)
	assert.Contains(t, cfg.GetDefaultAvatarURL(), "robohash.org")
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "jwt override",
			envVars: map[string]string{
				"JWT_ACCESS_SECRET":  "a",
				"JWT_REFRESH_SECRET": "r",
				"JWT_ACCESS_TTL":     "5m",
				"JWT_REFRESH_TTL":    "24h",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "a", cfg.JWT.AccessSecret)
				assert.Equal(t, "r", cfg.JWT.RefreshSecret)
				assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
				assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTTL)
			},
		},
		{
			name: "mongo override",
			envVars: map[string]string{
				"MONGODB_URI":          "mongodb://db:27017",
				"MONGODB_DB_NAME":      "shop",
				"MONGODB_TRANSACTIONS": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
				assert.Equal(t, "shop", cfg.Mongo.DBName)
				assert.True(t, cfg.Mongo.Transactions)
			},
		},
		{
			name: "kafka brokers list",
			envVars: map[string]string{
				"KAFKA_BROKERS": "k1:9092,k2:9092",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
			},
		},
		{
			name: "environment",
			envVars: map[string]string{
				"APP_ENV": "production",
			},
			expected: func(cfg *Config) {
				assert.False(t, cfg.IsDevelopment())
				assert.Equal(t, "production", cfg.GetEnvironment())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := NewConfig()

	assert.Error(t, err)
}
