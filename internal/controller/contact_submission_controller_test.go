package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
)

func TestCreateContactSubmission(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/submissions/contact", map[string]string{
		"name":    "Mark Founder",
		"email":   "mark@startup.io",
		"company": "Startup.io",
		"service": "Custom Websites",
		"budget":  "$5,000 - $15,000",
		"message": "We need a new landing page.",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored model.ContactSubmission
	require.NoError(t, database.DB.Where("email = ?", "mark@startup.io").First(&stored).Error)
	assert.Equal(t, model.SubmissionStatusNew, stored.Status)
	assert.Equal(t, "Custom Websites", stored.Service)
}

func TestCreateContactSubmissionRejectsBadEmail(t *testing.T) {
	app := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/submissions/contact", map[string]string{
		"name":  "Mark",
		"email": "mark-at-startup",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContactSubmissionLifecycle(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "manager@digitalmetrics.com", rbac.RoleCRMManager)

	submission := model.ContactSubmission{Name: "Mark", Email: "mark@startup.io"}
	require.NoError(t, database.DB.Create(&submission).Error)

	resp := doRequest(t, app, http.MethodPut,
		fmt.Sprintf("/api/admin/submissions/contact/%d/status", submission.ID),
		map[string]string{"status": "in-progress"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/admin/submissions/contact?status=in-progress", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["total"])

	resp = doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/api/admin/submissions/contact/%d", submission.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.DB.Unscoped().Model(&model.ContactSubmission{}).
		Where("id = ?", submission.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestContactSubmissionStatusNotFound(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, "admin@digitalmetrics.com", rbac.RoleAdministrator)

	resp := doRequest(t, app, http.MethodPut, "/api/admin/submissions/contact/9999/status",
		map[string]string{"status": "contacted"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
