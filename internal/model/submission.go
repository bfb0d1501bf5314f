package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission Status
type SubmissionStatus string

const (
	SubmissionStatusNew        SubmissionStatus = "new"
	SubmissionStatusContacted  SubmissionStatus = "contacted"
	SubmissionStatusInProgress SubmissionStatus = "in-progress"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusClosed     SubmissionStatus = "closed"
)

func SubmissionStatuses() []string {
	return []string{
		string(SubmissionStatusNew),
		string(SubmissionStatusContacted),
		string(SubmissionStatusInProgress),
		string(SubmissionStatusCompleted),
		string(SubmissionStatusClosed),
	}
}

func ValidSubmissionStatus(status SubmissionStatus) bool {
	switch status {
	case SubmissionStatusNew,
		SubmissionStatusContacted,
		SubmissionStatusInProgress,
		SubmissionStatusCompleted,
		SubmissionStatusClosed:
		return true
	default:
		return false
	}
}

// ClientSubmission comes from the multi-field popup intake form.
type ClientSubmission struct {
	gorm.Model
	Name     string           `json:"name" gorm:"not null"`
	Email    string           `json:"email" gorm:"not null;index"`
	Phone    string           `json:"phone"`
	Company  string           `json:"company"`
	Services datatypes.JSON   `json:"services"` // selected service tags
	Budget   string           `json:"budget"`
	Timeline string           `json:"timeline"`
	Message  string           `json:"message" gorm:"type:text"`
	Source   string           `json:"source"`
	Status   SubmissionStatus `json:"status" gorm:"size:30;default:'new';index"`
}

// ContactSubmission comes from the contact page form.
type ContactSubmission struct {
	gorm.Model
	Name    string           `json:"name" gorm:"not null"`
	Email   string           `json:"email" gorm:"not null;index"`
	Company string           `json:"company"`
	Service string           `json:"service"`
	Budget  string           `json:"budget"`
	Message string           `json:"message" gorm:"type:text"`
	Status  SubmissionStatus `json:"status" gorm:"size:30;default:'new';index"`
}
