package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/database"
)

type DashboardStats struct {
	ClientSubmissions       int64         `json:"client_submissions"`
	ContactSubmissions      int64         `json:"contact_submissions"`
	NewsletterSubscriptions int64         `json:"newsletter_subscriptions"`
	ClientFeedbacks         int64         `json:"client_feedbacks"`
	NewLeads                int64         `json:"new_leads"`
	StatusBreakdown         []StatusCount `json:"status_breakdown"`
	DailyLeads              []DailyStat   `json:"daily_leads"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DailyStat struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GetDashboardStats aggregates the admin dashboard counters. Each counter is
// computed independently so one failing query degrades only its own number.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats DashboardStats

	countOrZero := func(dest *int64, query func() error) {
		if err := query(); err != nil {
			log.Printf("Error computing dashboard counter: %v", err)
			*dest = 0
		}
	}

	countOrZero(&stats.ClientSubmissions, func() error {
		return db.Model(&model.ClientSubmission{}).Count(&stats.ClientSubmissions).Error
	})
	countOrZero(&stats.ContactSubmissions, func() error {
		return db.Model(&model.ContactSubmission{}).Count(&stats.ContactSubmissions).Error
	})
	countOrZero(&stats.NewsletterSubscriptions, func() error {
		return db.Model(&model.NewsletterSubscription{}).Count(&stats.NewsletterSubscriptions).Error
	})
	countOrZero(&stats.ClientFeedbacks, func() error {
		return db.Model(&model.ClientFeedback{}).Count(&stats.ClientFeedbacks).Error
	})
	countOrZero(&stats.NewLeads, func() error {
		return db.Model(&model.ClientSubmission{}).
			Where("status = ?", model.SubmissionStatusNew).
			Count(&stats.NewLeads).Error
	})

	if err := db.Model(&model.ClientSubmission{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&stats.StatusBreakdown).Error; err != nil {
		log.Printf("Error computing status breakdown: %v", err)
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := db.Model(&model.ClientSubmission{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("created_at >= ?", weekAgo).
		Group("DATE(created_at)").
		Order("date desc").
		Scan(&stats.DailyLeads).Error; err != nil {
		log.Printf("Error computing daily lead stats: %v", err)
	}

	return c.JSON(stats)
}
