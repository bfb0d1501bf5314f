package model

import (
	"time"

	"gorm.io/gorm"

	"digitalmetrics_backend/pkg/rbac"
)

type User struct {
	gorm.Model
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"`
	Name     string    `json:"name" gorm:"not null"`
	Role     rbac.Role `json:"role" gorm:"size:50;default:'sales'"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login"`
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"is_active":  u.IsActive,
		"last_login": u.LastLogin,
		"created_at": u.CreatedAt,
	}
}
