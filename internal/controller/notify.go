package controller

import (
	"log"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/rbac"
)

// notifyAdministrators runs send for every active administrator account.
// Delivery failures are logged, never surfaced to the submitting visitor.
func notifyAdministrators(send func(adminEmail string) error) {
	var admins []model.User
	err := database.GetDB().
		Where("role = ? AND is_active = ?", rbac.RoleAdministrator, true).
		Find(&admins).Error
	if err != nil {
		log.Printf("Could not fetch administrators for notification: %v", err)
		return
	}

	for _, admin := range admins {
		if err := send(admin.Email); err != nil {
			log.Printf("Could not send notification email to %s: %v", admin.Email, err)
		}
	}
}
