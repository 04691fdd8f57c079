package middleware_test

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelguide-web/internal/config"
	"github.com/travelguide-web/internal/delivery/http/middleware"
)

func newGatedApp(cfg *config.AdminConfig) *fiber.App {
	app := fiber.New()
	admin := app.Group("/admin", middleware.BasicAuth(cfg))
	admin.Get("/places", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestBasicAuth_OpenWhenUnconfigured(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{})

	req := httptest.NewRequest("GET", "/admin/places", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBasicAuth_OpenWhenOnlyUsernameSet(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{Username: "admin"})

	req := httptest.NewRequest("GET", "/admin/places", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBasicAuth_MissingHeader(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{Username: "admin", Password: "secret"})

	req := httptest.NewRequest("GET", "/admin/places", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `Basic realm="Admin Area"`, resp.Header.Get("WWW-Authenticate"))
}

func TestBasicAuth_Rejections(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{Username: "admin", Password: "secret"})

	tests := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Bearer abcdef"},
		{"broken base64", "Basic %%%not-base64%%%"},
		{"no colon in payload", "Basic " + base64.StdEncoding.EncodeToString([]byte("adminsecret"))},
		{"wrong password", basicHeader("admin", "wrong")},
		{"wrong username", basicHeader("root", "secret")},
		{"empty pair", basicHeader("", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin/places", nil)
			req.Header.Set("Authorization", tt.header)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, `Basic realm="Admin Area"`, resp.Header.Get("WWW-Authenticate"))
		})
	}
}

func TestBasicAuth_ValidCredentials(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{Username: "admin", Password: "secret"})

	req := httptest.NewRequest("GET", "/admin/places", nil)
	req.Header.Set("Authorization", basicHeader("admin", "secret"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBasicAuth_PasswordWithColon(t *testing.T) {
	app := newGatedApp(&config.AdminConfig{Username: "admin", Password: "se:cret"})

	req := httptest.NewRequest("GET", "/admin/places", nil)
	req.Header.Set("Authorization", basicHeader("admin", "se:cret"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
