package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
)

func TestRegisterAndLogin(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "new@digitalmetrics.com",
		"password": "secret123",
		"name":     "New User",
		"role":     "crm_manager",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "crm_manager", user["role"])
	assert.Equal(t, true, user["is_active"])

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "new@digitalmetrics.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	var stored model.User
	require.NoError(t, database.DB.Where("email = ?", "new@digitalmetrics.com").First(&stored).Error)
	assert.NotNil(t, stored.LastLogin)
}

func TestRegisterDefaultsToSalesRole(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "rep@digitalmetrics.com",
		"password": "secret123",
		"name":     "Rep",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "sales", user["role"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "x@digitalmetrics.com",
		"password": "secret123",
		"name":     "X",
		"role":     "superuser",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	createTestUser(t, "taken@digitalmetrics.com", rbac.RoleSales)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "taken@digitalmetrics.com",
		"password": "secret123",
		"name":     "Dup",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := setupTestApp(t)
	createTestUser(t, "user@digitalmetrics.com", rbac.RoleSales)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "user@digitalmetrics.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@digitalmetrics.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	app := setupTestApp(t)
	user, _ := createTestUser(t, "inactive@digitalmetrics.com", rbac.RoleSales)
	require.NoError(t, database.DB.Model(&user).Update("is_active", false).Error)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "inactive@digitalmetrics.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetMe(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "me@digitalmetrics.com", rbac.RoleAdministrator)

	resp := doRequest(t, app, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "me@digitalmetrics.com", user["email"])

	permissions := body["permissions"].([]interface{})
	assert.Contains(t, permissions, "manage_users")
}

func TestGetMeRequiresToken(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/auth/me", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
