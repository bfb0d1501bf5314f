package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"digitalmetrics_backend/internal/middleware"
	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
	"digitalmetrics_backend/pkg/utils/jwt"
	"digitalmetrics_backend/pkg/utils/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:controller_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.ClientSubmission{},
		&model.ContactSubmission{},
		&model.NewsletterSubscription{},
		&model.ClientFeedback{},
		&model.ServicePage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	database.DB = db
	return db
}

// setupTestApp wires the same route table the server uses for the pieces
// under test.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	setupTestDB(t)

	app := fiber.New(fiber.Config{
		BodyLimit: validation.MaxImageSize + 1024*1024,
	})
	api := app.Group("/api")

	auth := api.Group("/auth", middleware.RequireDatabase())
	auth.Post("/register", Register)
	auth.Post("/login", Login)
	auth.Get("/me", middleware.AuthMiddleware(), GetMe)

	api.Post("/submissions/client", CreateClientSubmission)
	api.Post("/submissions/contact", CreateContactSubmission)
	api.Post("/newsletter/subscribe", Subscribe)

	public := api.Group("/", middleware.RequireDatabase())
	public.Get("/feedbacks/active", GetActiveFeedbacks)
	public.Get("/services", GetServicePages)
	public.Get("/services/:slug", GetServicePageBySlug)

	admin := api.Group("/admin", middleware.RequireDatabase(), middleware.AuthMiddleware())

	data := admin.Group("/", middleware.RequirePermission(rbac.ViewAllData))
	data.Get("/dashboard/stats", GetDashboardStats)
	data.Get("/submissions/client", GetClientSubmissions)
	data.Put("/submissions/client/:id/status", UpdateClientSubmissionStatus)
	data.Delete("/submissions/client/:id", DeleteClientSubmission)
	data.Get("/submissions/contact", GetContactSubmissions)
	data.Put("/submissions/contact/:id/status", UpdateContactSubmissionStatus)
	data.Delete("/submissions/contact/:id", DeleteContactSubmission)
	data.Get("/newsletter", GetNewsletterSubscriptions)
	data.Put("/newsletter/:id/status", UpdateNewsletterStatus)
	data.Delete("/newsletter/:id", DeleteNewsletterSubscription)
	data.Get("/feedbacks", GetFeedbacks)
	data.Post("/feedbacks", CreateFeedback)
	data.Put("/feedbacks/:id", UpdateFeedback)
	data.Put("/feedbacks/:id/active", ToggleFeedbackActive)
	data.Delete("/feedbacks/:id", DeleteFeedback)
	data.Post("/feedbacks/:id/image", UploadFeedbackImage)

	users := admin.Group("/users", middleware.RequirePermission(rbac.ManageUsers))
	users.Get("/", GetUsers)
	users.Put("/:id", UpdateUser)
	users.Delete("/:id", DeleteUser)

	services := admin.Group("/services", middleware.RequirePermission(rbac.SystemSettings))
	services.Post("/", CreateServicePage)
	services.Put("/:id", UpdateServicePage)
	services.Delete("/:id", DeleteServicePage)

	return app
}

func createTestUser(t *testing.T, email string, role rbac.Role) (model.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := model.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Test User",
		Role:     role,
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader = bytes.NewReader(nil)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	resp.Body.Close()
	return body
}
