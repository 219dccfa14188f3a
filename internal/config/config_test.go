package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TEST_INT", "7")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BAD_INT", "seven")

	assert.Equal(t, 7, GetEnvAsType("TEST_INT", 1))
	assert.True(t, GetEnvAsType("TEST_BOOL", false))
	assert.Equal(t, 1, GetEnvAsType("TEST_BAD_INT", 1))
	assert.Equal(t, "fallback", GetEnvAsType("TEST_MISSING_STRING", "fallback"))
}

// clearEnv unsets every variable LoadConfig reads so each case starts from defaults
func clearEnv(t *testing.T) {
	vars := []string{
		"APP_PORT", "PORT", "APP_HOST", "LOG_LEVEL", "DATABASE_URL", "DB_DRIVER", "DB_PATH",
		"DB_MAX_RETRIES", "SEED_MENU", "STATIC_DIR", "CORS_ALLOWED_ORIGINS",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "SERVICE_NAME",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "127.0.0.1")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "postgres://pizza:secret@db:5432/pizzaria")
		t.Setenv("DB_MAX_RETRIES", "2")
		t.Setenv("SEED_MENU", "true")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "127.0.0.1", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres", config.Database.Driver)
		assert.Equal(t, "postgres://pizza:secret@db:5432/pizzaria", config.Database.DSN())
		assert.Equal(t, 2, config.Database.MaxRetries)
		assert.True(t, config.SeedMenu)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORSAllowedOrigins)
	})

	t.Run("should fall back to PORT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "4000")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 4000, config.Port)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid database url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", "not a url")

		config, err := LoadConfig()

		assert.ErrorContains(t, err, "DATABASE_URL")
		assert.Nil(t, config)
	})

	t.Run("should fail with unsupported driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "oracle")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 3000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, "sqlite", config.Database.Driver)
		assert.Equal(t, "pizzaria.db", config.Database.Path)
		assert.Equal(t, 5, config.Database.MaxRetries)
		assert.Equal(t, "public", config.StaticDir)
		assert.Equal(t, []string{"*"}, config.CORSAllowedOrigins)
		assert.False(t, config.SeedMenu)
		assert.Empty(t, config.OTelEndpoint)
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://pizza:secret@db:5432/pizzaria")
	t.Setenv("DB_PASSWORD", "secret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.NotContains(t, config.String(), "secret")
	assert.Contains(t, config.String(), "[REDACTED]")
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
