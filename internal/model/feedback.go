package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackMetric is one headline result shown under a testimonial,
// e.g. {"label": "Organic Traffic", "value": "+212%"}.
type FeedbackMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ClientFeedback is an admin-curated testimonial. Only entries with
// IsActive set are served to the public carousel.
type ClientFeedback struct {
	gorm.Model
	ClientName    string         `json:"client_name" gorm:"not null"`
	ClientTitle   string         `json:"client_title"`
	ClientCompany string         `json:"client_company"`
	ClientImage   string         `json:"client_image"`
	Rating        int            `json:"rating"` // intended range 1-5
	Testimonial   string         `json:"testimonial" gorm:"type:text"`
	Metrics       datatypes.JSON `json:"metrics"`
	IsActive      bool           `json:"is_active" gorm:"index"`
}
