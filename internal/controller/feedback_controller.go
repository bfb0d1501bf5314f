package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/utils/storage"
	"digitalmetrics_backend/pkg/utils/validation"
)

// ActiveFeedbackLimit caps the public testimonial carousel.
const ActiveFeedbackLimit = 8

type FeedbackInput struct {
	ClientName    string                 `json:"client_name" validate:"required"`
	ClientTitle   string                 `json:"client_title"`
	ClientCompany string                 `json:"client_company"`
	ClientImage   string                 `json:"client_image"`
	Rating        int                    `json:"rating"`
	Testimonial   string                 `json:"testimonial"`
	Metrics       []model.FeedbackMetric `json:"metrics"`
	IsActive      bool                   `json:"is_active"`
}

func CreateFeedback(c *fiber.Ctx) error {
	input := new(FeedbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.ClientName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Client name is required",
		})
	}

	metricsJSON, err := json.Marshal(input.Metrics)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid metrics list",
		})
	}

	feedback := model.ClientFeedback{
		ClientName:    input.ClientName,
		ClientTitle:   input.ClientTitle,
		ClientCompany: input.ClientCompany,
		ClientImage:   input.ClientImage,
		Rating:        input.Rating,
		Testimonial:   input.Testimonial,
		Metrics:       datatypes.JSON(metricsJSON),
		IsActive:      input.IsActive,
	}

	if err := database.GetDB().Create(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save feedback",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Feedback created successfully",
		"feedback": feedback,
	})
}

func GetFeedbacks(c *fiber.Ctx) error {
	var feedbacks []model.ClientFeedback
	if err := database.GetDB().Order("created_at desc").Find(&feedbacks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch feedbacks",
		})
	}

	return c.JSON(fiber.Map{
		"feedbacks": feedbacks,
		"total":     len(feedbacks),
	})
}

// GetActiveFeedbacks serves the public testimonial carousel: active entries
// only, newest first, capped.
func GetActiveFeedbacks(c *fiber.Ctx) error {
	var feedbacks []model.ClientFeedback
	if err := database.GetDB().
		Where("is_active = ?", true).
		Order("created_at desc").
		Limit(ActiveFeedbackLimit).
		Find(&feedbacks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch feedbacks",
		})
	}

	return c.JSON(fiber.Map{
		"feedbacks": feedbacks,
	})
}

func UpdateFeedback(c *fiber.Ctx) error {
	feedbackID := c.Params("id")

	var feedback model.ClientFeedback
	if err := database.GetDB().First(&feedback, feedbackID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	input := new(FeedbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	metricsJSON, err := json.Marshal(input.Metrics)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid metrics list",
		})
	}

	updates := map[string]interface{}{
		"client_name":    input.ClientName,
		"client_title":   input.ClientTitle,
		"client_company": input.ClientCompany,
		"client_image":   input.ClientImage,
		"rating":         input.Rating,
		"testimonial":    input.Testimonial,
		"metrics":        datatypes.JSON(metricsJSON),
		"is_active":      input.IsActive,
	}

	if err := database.GetDB().Model(&feedback).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update feedback",
		})
	}

	database.GetDB().First(&feedback, feedbackID)

	return c.JSON(fiber.Map{
		"message":  "Feedback updated successfully",
		"feedback": feedback,
	})
}

// ToggleFeedbackActive flips only the display flag.
func ToggleFeedbackActive(c *fiber.Ctx) error {
	feedbackID := c.Params("id")

	var feedback model.ClientFeedback
	if err := database.GetDB().First(&feedback, feedbackID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	input := struct {
		IsActive bool `json:"is_active"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := database.GetDB().Model(&feedback).Update("is_active", input.IsActive).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update feedback status",
		})
	}

	database.GetDB().First(&feedback, feedbackID)

	return c.JSON(fiber.Map{
		"message":  "Feedback status updated successfully",
		"feedback": feedback,
	})
}

func DeleteFeedback(c *fiber.Ctx) error {
	feedbackID := c.Params("id")

	var feedback model.ClientFeedback
	if err := database.GetDB().First(&feedback, feedbackID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	if feedback.ClientImage != "" {
		if err := storage.DeleteImage(feedback.ClientImage); err != nil {
			log.Printf("Error deleting feedback image: %v", err)
		}
	}

	if err := database.GetDB().Unscoped().Delete(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete feedback",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Feedback deleted successfully",
	})
}

// UploadFeedbackImage stores the client's headshot and points the entry at it.
func UploadFeedbackImage(c *fiber.Ctx) error {
	feedbackID := c.Params("id")

	var feedback model.ClientFeedback
	if err := database.GetDB().First(&feedback, feedbackID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Feedback not found",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image provided",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if feedback.ClientImage != "" {
		if err := storage.DeleteImage(feedback.ClientImage); err != nil {
			log.Printf("Error deleting old feedback image: %v", err)
		}
	}

	imageURL, err := storage.UploadFeedbackImage(storage.UploadConfig{
		File:       file,
		ClientName: feedback.ClientName,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Could not upload image: %v", err),
		})
	}

	if err := database.GetDB().Model(&feedback).Update("client_image", imageURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update feedback image",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"image":   imageURL,
	})
}
