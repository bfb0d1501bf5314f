package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
)

type ServicePageInput struct {
	Title       string          `json:"title" validate:"required"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description"`
	Benefits    []string        `json:"benefits"`
	Features    []string        `json:"features"`
	Process     json.RawMessage `json:"process"`
	Pricing     json.RawMessage `json:"pricing"`
}

// GetServicePages lists the catalog entries backing the marketing pages.
func GetServicePages(c *fiber.Ctx) error {
	type ServiceSummary struct {
		ID       uint   `json:"id"`
		Slug     string `json:"slug"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}

	var services []ServiceSummary
	if err := database.GetDB().Model(&model.ServicePage{}).
		Select("id, slug, title, subtitle").
		Order("title asc").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch services",
		})
	}

	return c.JSON(fiber.Map{
		"services": services,
	})
}

func GetServicePageBySlug(c *fiber.Ctx) error {
	pageSlug := c.Params("slug")

	var service model.ServicePage
	if err := database.GetDB().Where("slug = ?", pageSlug).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	return c.JSON(service)
}

func CreateServicePage(c *fiber.Ctx) error {
	input := new(ServicePageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	service, err := servicePageFromInput(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service payload",
		})
	}

	if err := database.GetDB().Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service created successfully",
		"service": service,
	})
}

func UpdateServicePage(c *fiber.Ctx) error {
	serviceID := c.Params("id")

	var service model.ServicePage
	if err := database.GetDB().First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	input := new(ServicePageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updated, err := servicePageFromInput(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service payload",
		})
	}

	updates := map[string]interface{}{
		"title":       updated.Title,
		"subtitle":    updated.Subtitle,
		"description": updated.Description,
		"benefits":    updated.Benefits,
		"features":    updated.Features,
		"process":     updated.Process,
		"pricing":     updated.Pricing,
	}

	if err := database.GetDB().Model(&service).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update service",
		})
	}

	database.GetDB().First(&service, serviceID)

	return c.JSON(fiber.Map{
		"message": "Service updated successfully",
		"service": service,
	})
}

func DeleteServicePage(c *fiber.Ctx) error {
	serviceID := c.Params("id")

	var service model.ServicePage
	if err := database.GetDB().First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete service",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}

func servicePageFromInput(input *ServicePageInput) (*model.ServicePage, error) {
	benefits, err := json.Marshal(input.Benefits)
	if err != nil {
		return nil, err
	}
	features, err := json.Marshal(input.Features)
	if err != nil {
		return nil, err
	}

	service := &model.ServicePage{
		Title:       input.Title,
		Subtitle:    input.Subtitle,
		Description: input.Description,
		Benefits:    datatypes.JSON(benefits),
		Features:    datatypes.JSON(features),
	}
	if len(input.Process) > 0 {
		service.Process = datatypes.JSON(input.Process)
	}
	if len(input.Pricing) > 0 {
		service.Pricing = datatypes.JSON(input.Pricing)
	}
	return service, nil
}
