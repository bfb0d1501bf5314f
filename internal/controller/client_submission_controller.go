package controller

import (
	"encoding/json"
	"log"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/email"
)

type ClientSubmissionInput struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone"`
	Company  string   `json:"company"`
	Services []string `json:"services"`
	Budget   string   `json:"budget"`
	Timeline string   `json:"timeline"`
	Message  string   `json:"message"`
	Source   string   `json:"source"`
}

// CreateClientSubmission handles the public popup intake form.
func CreateClientSubmission(c *fiber.Ctx) error {
	input := new(ClientSubmissionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email format",
		})
	}

	if !database.Available() {
		// Offline mode: answer like a write happened, but say so in the logs.
		log.Printf("offline mode: client submission from %s not persisted", input.Email)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      "mock-" + uuid.NewString(),
			"message": "Your request has been received. We will get back to you shortly.",
		})
	}

	servicesJSON, err := json.Marshal(input.Services)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid services list",
		})
	}

	submission := model.ClientSubmission{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Company:  input.Company,
		Services: datatypes.JSON(servicesJSON),
		Budget:   input.Budget,
		Timeline: input.Timeline,
		Message:  input.Message,
		Source:   input.Source,
		Status:   model.SubmissionStatusNew,
	}

	if err := database.GetDB().Create(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save submission",
		})
	}

	if email.GlobalEmailService != nil {
		notifyAdministrators(func(adminEmail string) error {
			return email.GlobalEmailService.SendLeadNotificationEmail(
				adminEmail,
				input.Name,
				input.Email,
				input.Phone,
				strings.Join(input.Services, ", "),
				input.Message,
			)
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      submission.ID,
		"message": "Your request has been received. We will get back to you shortly.",
	})
}

// GetClientSubmissions lists intake submissions for the admin dashboard,
// newest first, with optional status and free-text filters.
func GetClientSubmissions(c *fiber.Ctx) error {
	var submissions []model.ClientSubmission
	query := database.GetDB().Model(&model.ClientSubmission{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if q := c.Query("q"); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(email) LIKE ? OR lower(company) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Order("created_at desc").Find(&submissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch submissions",
		})
	}

	return c.JSON(fiber.Map{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

func UpdateClientSubmissionStatus(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	var submission model.ClientSubmission
	if err := database.GetDB().First(&submission, submissionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}

	input := struct {
		Status string `json:"status"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	// Membership check only; any transition between valid statuses is allowed.
	if !model.ValidSubmissionStatus(model.SubmissionStatus(input.Status)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Invalid status value",
			"valid_statuses": model.SubmissionStatuses(),
		})
	}

	if err := database.GetDB().Model(&submission).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update submission status",
		})
	}

	database.GetDB().First(&submission, submissionID)

	return c.JSON(fiber.Map{
		"message":    "Submission status updated successfully",
		"submission": submission,
	})
}

func DeleteClientSubmission(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	var submission model.ClientSubmission
	if err := database.GetDB().First(&submission, submissionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete submission",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Submission deleted successfully",
	})
}
