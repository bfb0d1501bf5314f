package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"digitalmetrics_backend/internal/controller"
	"digitalmetrics_backend/internal/middleware"
	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/config"
	"digitalmetrics_backend/pkg/cron"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/email"
	"digitalmetrics_backend/pkg/rbac"
	"digitalmetrics_backend/pkg/seed"
	"digitalmetrics_backend/pkg/utils/jwt"
	"digitalmetrics_backend/pkg/utils/storage"
	"digitalmetrics_backend/pkg/utils/validation"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth", middleware.RequireDatabase())
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)
	auth.Get("/me", middleware.AuthMiddleware(), controller.GetMe)

	// Public lead-capture surfaces (handle offline mode themselves)
	api.Post("/submissions/client", controller.CreateClientSubmission)
	api.Post("/submissions/contact", controller.CreateContactSubmission)
	api.Post("/newsletter/subscribe", controller.Subscribe)

	// Public content
	public := api.Group("/", middleware.RequireDatabase())
	public.Get("/feedbacks/active", controller.GetActiveFeedbacks)
	public.Get("/services", controller.GetServicePages)
	public.Get("/services/:slug", controller.GetServicePageBySlug)

	// Admin Routes
	admin := api.Group("/admin", middleware.RequireDatabase(), middleware.AuthMiddleware())

	data := admin.Group("/", middleware.RequirePermission(rbac.ViewAllData))
	data.Get("/dashboard/stats", controller.GetDashboardStats)

	data.Get("/submissions/client", controller.GetClientSubmissions)
	data.Put("/submissions/client/:id/status", controller.UpdateClientSubmissionStatus)
	data.Delete("/submissions/client/:id", controller.DeleteClientSubmission)

	data.Get("/submissions/contact", controller.GetContactSubmissions)
	data.Put("/submissions/contact/:id/status", controller.UpdateContactSubmissionStatus)
	data.Delete("/submissions/contact/:id", controller.DeleteContactSubmission)

	data.Get("/newsletter", controller.GetNewsletterSubscriptions)
	data.Put("/newsletter/:id/status", controller.UpdateNewsletterStatus)
	data.Delete("/newsletter/:id", controller.DeleteNewsletterSubscription)

	data.Get("/feedbacks", controller.GetFeedbacks)
	data.Post("/feedbacks", controller.CreateFeedback)
	data.Put("/feedbacks/:id", controller.UpdateFeedback)
	data.Put("/feedbacks/:id/active", controller.ToggleFeedbackActive)
	data.Delete("/feedbacks/:id", controller.DeleteFeedback)
	data.Post("/feedbacks/:id/image", controller.UploadFeedbackImage)

	users := admin.Group("/users", middleware.RequirePermission(rbac.ManageUsers))
	users.Get("/", controller.GetUsers)
	users.Put("/:id", controller.UpdateUser)
	users.Delete("/:id", controller.DeleteUser)

	services := admin.Group("/services", middleware.RequirePermission(rbac.SystemSettings))
	services.Post("/", controller.CreateServicePage)
	services.Put("/:id", controller.UpdateServicePage)
	services.Delete("/:id", controller.DeleteServicePage)
}

func main() {
	cfg := config.Load()

	jwt.Init(cfg.JWT.Secret)
	storage.Init(cfg.Storage)

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey); err != nil {
			log.Printf("Could not initialize email service: %v", err)
		}
	} else {
		log.Println("RESEND_API_KEY is not set, email notifications disabled")
	}

	if cfg.Database.URL == "" {
		log.Println("WARNING: DATABASE_URL is not set — running in OFFLINE MODE. " +
			"Public form submissions will be acknowledged but NOT persisted, " +
			"and the admin API will answer 503.")
	} else {
		database.InitDB(cfg.Database.URL)
		err := database.MigrateDatabase(
			&model.User{},
			&model.ClientSubmission{},
			&model.ContactSubmission{},
			&model.NewsletterSubscription{},
			&model.ClientFeedback{},
			&model.ServicePage{},
		)
		if err != nil {
			log.Printf("Migration warning: %v", err)
		}

		if os.Getenv("SEED_DEMO_DATA") == "true" {
			seed.SeedDemoUsers(database.GetDB())
			seed.SeedServicePages(database.GetDB())
		}
	}

	cron.InitLeadStatsCron()

	app := fiber.New(fiber.Config{
		// leave headroom above the image cap so oversize uploads reach the
		// friendly validation error instead of a bare 413
		BodyLimit: validation.MaxImageSize + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
