// pkg/cron/lead_stats.go

package cron

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
	"digitalmetrics_backend/pkg/email"
	"digitalmetrics_backend/pkg/rbac"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

func InitLeadStatsCron() {
	c := cron.New()

	// Every day at 19:00
	_, err := c.AddFunc("0 19 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Lead stats already sent today, skipping...")
			return
		}

		sendDailyLeadStats()
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize lead stats cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Lead stats cron initialized successfully")
}

func sendDailyLeadStats() {
	if !database.Available() {
		log.Printf("Lead stats skipped: database not configured")
		return
	}

	dayStart := time.Now().Truncate(24 * time.Hour)
	log.Printf("Running lead stats for date: %s", dayStart.Format("2006-01-02"))

	var clientCount int64
	if err := database.DB.Model(&model.ClientSubmission{}).
		Where("created_at >= ?", dayStart).
		Count(&clientCount).Error; err != nil {
		log.Printf("Error counting client submissions: %v", err)
		return
	}

	var contactCount int64
	if err := database.DB.Model(&model.ContactSubmission{}).
		Where("created_at >= ?", dayStart).
		Count(&contactCount).Error; err != nil {
		log.Printf("Error counting contact submissions: %v", err)
		return
	}

	if clientCount == 0 && contactCount == 0 {
		log.Printf("No new leads today, digest skipped")
		return
	}

	var admins []model.User
	if err := database.DB.
		Where("role = ? AND is_active = ?", rbac.RoleAdministrator, true).
		Find(&admins).Error; err != nil {
		log.Printf("Error fetching administrators: %v", err)
		return
	}

	for _, admin := range admins {
		if email.GlobalEmailService != nil {
			err := email.GlobalEmailService.SendDailyLeadStats(
				admin.Email,
				admin.Name,
				clientCount,
				contactCount,
				time.Now(),
			)
			if err != nil {
				log.Printf("Error sending lead stats to %s: %v", admin.Email, err)
			} else {
				log.Printf("Successfully sent lead stats to %s", admin.Email)
			}
		}
	}
}
