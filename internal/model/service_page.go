package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServicePage backs one marketing service landing page (SEO, PPC, ...).
type ServicePage struct {
	gorm.Model
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Subtitle    string         `json:"subtitle"`
	Description string         `json:"description" gorm:"type:text"`
	Benefits    datatypes.JSON `json:"benefits"`
	Features    datatypes.JSON `json:"features"`
	Process     datatypes.JSON `json:"process"`
	Pricing     datatypes.JSON `json:"pricing"`
}

// BeforeCreate fills the slug from the title when none was given.
func (s *ServicePage) BeforeCreate(tx *gorm.DB) error {
	if s.Slug == "" {
		candidate := slug.Make(s.Title)

		var count int64
		tx.Model(&ServicePage{}).Where("slug = ?", candidate).Count(&count)
		if count > 0 {
			candidate = candidate + "-" + time.Now().Format("20060102")
		}

		s.Slug = candidate
	}
	return nil
}
