package controller

import (
	"log"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/email"
)

type ContactSubmissionInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
}

// CreateContactSubmission handles the public contact page form.
func CreateContactSubmission(c *fiber.Ctx) error {
	input := new(ContactSubmissionInput)
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
		log.Printf("offline mode: contact submission from %s not persisted", input.Email)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      "mock-" + uuid.NewString(),
			"message": "Thank you for reaching out. We will get back to you shortly.",
		})
	}

	submission := model.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Service: input.Service,
		Budget:  input.Budget,
		Message: input.Message,
		Status:  model.SubmissionStatusNew,
	}

	if err := database.GetDB().Create(&submission).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save submission",
		})
	}

	if email.GlobalEmailService != nil {
		notifyAdministrators(func(adminEmail string) error {
			return email.GlobalEmailService.SendContactNotificationEmail(
				adminEmail,
				input.Name,
				input.Email,
				input.Company,
				input.Service,
				input.Message,
			)
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      submission.ID,
		"message": "Thank you for reaching out. We will get back to you shortly.",
	})
}

func GetContactSubmissions(c *fiber.Ctx) error {
	var submissions []model.ContactSubmission
	query := database.GetDB().Model(&model.ContactSubmission{})

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

func UpdateContactSubmissionStatus(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	var submission model.ContactSubmission
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

func DeleteContactSubmission(c *fiber.Ctx) error {
	submissionID := c.Params("id")

	var submission model.ContactSubmission
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
