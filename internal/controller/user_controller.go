package controller

import (
	"github.com/gofiber/fiber/v2"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
)

type UserUpdateInput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

// GetUsers lists the user directory, newest first.
func GetUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := database.GetDB().Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch users",
		})
	}

	profiles := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].GetPublicProfile())
	}

	return c.JSON(fiber.Map{
		"users": profiles,
		"total": len(profiles),
	})
}

// UpdateUser changes name, role or active flag of a directory entry.
func UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var user model.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	input := new(UserUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := map[string]interface{}{}

	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Role != "" {
		if !rbac.ValidRole(rbac.Role(input.Role)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role",
				"valid_roles": []rbac.Role{
					rbac.RoleAdministrator,
					rbac.RoleCRMManager,
					rbac.RoleSales,
				},
			})
		}
		updates["role"] = input.Role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nothing to update",
		})
	}

	if err := database.GetDB().Model(&user).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update user",
		})
	}

	database.GetDB().First(&user, userID)

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    user.GetPublicProfile(),
	})
}

// DeleteUser removes the directory entry outright.
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var user model.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
