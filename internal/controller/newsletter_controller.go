package controller

import (
	"log"
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/email"
)

type NewsletterSubscriptionInput struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles the public footer newsletter signup.
func Subscribe(c *fiber.Ctx) error {
	var input NewsletterSubscriptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input format",
		})
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid email format",
		})
	}

	if !database.Available() {
		log.Printf("offline mode: newsletter signup for %s not persisted", input.Email)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      "mock-" + uuid.NewString(),
			"message": "Successfully subscribed to newsletter",
		})
	}

	var existing model.NewsletterSubscription
	if err := database.GetDB().
		Where("email = ? AND status = ?", input.Email, model.NewsletterStatusActive).
		First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Already subscribed to the newsletter",
		})
	}

	subscription := model.NewsletterSubscription{
		Email:  input.Email,
		Status: model.NewsletterStatusActive,
	}

	if err := database.GetDB().Create(&subscription).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete subscription",
		})
	}

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendNewsletterWelcomeEmail(input.Email); err != nil {
			log.Printf("Could not send newsletter welcome email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      subscription.ID,
		"message": "Successfully subscribed to newsletter",
	})
}

func GetNewsletterSubscriptions(c *fiber.Ctx) error {
	var subscriptions []model.NewsletterSubscription
	query := database.GetDB().Model(&model.NewsletterSubscription{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("subscribed_at desc").Find(&subscriptions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch subscriptions",
		})
	}

	return c.JSON(fiber.Map{
		"subscriptions": subscriptions,
		"total":         len(subscriptions),
	})
}

func UpdateNewsletterStatus(c *fiber.Ctx) error {
	subscriptionID := c.Params("id")

	var subscription model.NewsletterSubscription
	if err := database.GetDB().First(&subscription, subscriptionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subscription not found",
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

	switch model.NewsletterStatus(input.Status) {
	case model.NewsletterStatusActive, model.NewsletterStatusUnsubscribed:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status value",
			"valid_statuses": []string{
				string(model.NewsletterStatusActive),
				string(model.NewsletterStatusUnsubscribed),
			},
		})
	}

	if err := database.GetDB().Model(&subscription).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update subscription status",
		})
	}

	database.GetDB().First(&subscription, subscriptionID)

	return c.JSON(fiber.Map{
		"message":      "Subscription status updated successfully",
		"subscription": subscription,
	})
}

func DeleteNewsletterSubscription(c *fiber.Ctx) error {
	subscriptionID := c.Params("id")

	var subscription model.NewsletterSubscription
	if err := database.GetDB().First(&subscription, subscriptionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subscription not found",
		})
	}

	if err := database.GetDB().Delete(&subscription).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete subscription",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Subscription deleted successfully",
	})
}
