package controller

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalmetrics_backend/internal/middleware"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
)

// setupOfflineApp wires the route table with no database behind it, the way
// the server comes up when DATABASE_URL is unset.
func setupOfflineApp(t *testing.T) *fiber.App {
	t.Helper()

	prev := database.DB
	database.DB = nil
	t.Cleanup(func() { database.DB = prev })

	app := fiber.New()
	api := app.Group("/api")

	auth := api.Group("/auth", middleware.RequireDatabase())
	auth.Post("/register", Register)
	auth.Post("/login", Login)

	api.Post("/submissions/client", CreateClientSubmission)
	api.Post("/submissions/contact", CreateContactSubmission)
	api.Post("/newsletter/subscribe", Subscribe)

	admin := api.Group("/admin", middleware.RequireDatabase(), middleware.AuthMiddleware())
	data := admin.Group("/", middleware.RequirePermission(rbac.ViewAllData))
	data.Get("/submissions/client", GetClientSubmissions)

	return app
}

func TestOfflinePublicSubmitsReturnPlaceholderID(t *testing.T) {
	app := setupOfflineApp(t)

	for _, path := range []string{
		"/api/submissions/client",
		"/api/submissions/contact",
	} {
		resp := doRequest(t, app, http.MethodPost, path, map[string]string{
			"name":  "Jane",
			"email": "jane@acme.com",
		}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode, path)

		body := decodeBody(t, resp)
		id, ok := body["id"].(string)
		require.True(t, ok, "offline id must be a string placeholder")
		assert.True(t, strings.HasPrefix(id, "mock-"), "got id %q", id)
	}

	resp := doRequest(t, app, http.MethodPost, "/api/newsletter/subscribe",
		map[string]string{"email": "jane@acme.com"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.True(t, strings.HasPrefix(body["id"].(string), "mock-"))
}

func TestOfflineStillValidatesInput(t *testing.T) {
	app := setupOfflineApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/submissions/client",
		map[string]string{"email": "jane@acme.com"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOfflineAdminAndAuthUnavailable(t *testing.T) {
	app := setupOfflineApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/admin/submissions/client", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@b.com", "password": "x"}, "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
