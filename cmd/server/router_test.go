package main

import (
	"os"
	"testing"
	"time"

	"alerta-vecinal/cmd/server/handlers"
	"alerta-vecinal/cmd/server/middlewares"
	"alerta-vecinal/cmd/server/testutil"
	"alerta-vecinal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "super-secret-jwt-key-at-least-32-chars!!"

func TestRequestLoggingConfig(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"request logging disabled", "false", false},
		{"request logging enabled", "true", true},
		{"default value (no env var)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				_ = os.Unsetenv("REQUEST_LOGGING_ENABLED")
				config.ResetCache()
			}()

			if tt.envValue != "" {
				require.NoError(t, os.Setenv("REQUEST_LOGGING_ENABLED", tt.envValue))
			}
			config.ResetCache()

			cfg, err := config.Load()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, cfg.RequestLoggingEnabled)
		})
	}
}

func TestPerfilRoute(t *testing.T) {
	cfg := config.Config{JWTSecret: testJWTSecret}

	app := testutil.CreateTestApp(t)
	app.Get("/api/perfil", middlewares.JWT(cfg), handlers.Perfil)

	t.Run("valid token", func(t *testing.T) {
		token, err := testutil.CreateTestJWT("683cdb8aa96ad71e8e075bd1", "Ana Soto", []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", "/api/perfil", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := testutil.DecodeBody(t, resp)
		assert.Equal(t, "683cdb8aa96ad71e8e075bd1", body["usuarioId"])
		assert.Equal(t, "Ana Soto", body["nombre"])
	})

	t.Run("missing token", func(t *testing.T) {
		req := testutil.CreateJSONRequest("GET", "/api/perfil", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := testutil.CreateTestJWT("683cdb8aa96ad71e8e075bd1", "Ana Soto", []byte(testJWTSecret), -time.Minute)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", "/api/perfil", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		token, err := testutil.CreateTestJWT("683cdb8aa96ad71e8e075bd1", "Ana Soto", []byte("another-secret-that-is-32-chars-long!!!!"), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", "/api/perfil", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token without nombre claim is rejected", func(t *testing.T) {
		token, err := testutil.CreateTestJWT("683cdb8aa96ad71e8e075bd1", "", []byte(testJWTSecret), time.Hour)
		require.NoError(t, err)

		req := testutil.CreateAuthenticatedRequest("GET", "/api/perfil", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
