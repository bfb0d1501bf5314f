package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type LeadNotificationData struct {
	LeadName    string
	LeadEmail   string
	LeadPhone   string
	Services    string
	LeadMessage string
}

type ContactNotificationData struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

type NewsletterWelcomeData struct {
	Email string
}

type DailyLeadStatsData struct {
	AdminName    string
	ClientCount  int64
	ContactCount int64
	Date         time.Time
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "DigitalMetrics <noreply@digitalmetrics.com>",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("Resend API response: Status: %d, Body: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// Email sending methods
func (s *EmailService) SendLeadNotificationEmail(
	adminEmail, leadName, leadEmail, leadPhone, services, leadMessage string,
) error {
	data := LeadNotificationData{
		LeadName:    leadName,
		LeadEmail:   leadEmail,
		LeadPhone:   leadPhone,
		Services:    services,
		LeadMessage: leadMessage,
	}
	return s.sendTemplateEmail(adminEmail, "New Client Lead! 📋", "lead_notification.html", data)
}

func (s *EmailService) SendContactNotificationEmail(
	adminEmail, name, contactEmail, company, service, message string,
) error {
	data := ContactNotificationData{
		Name:    name,
		Email:   contactEmail,
		Company: company,
		Service: service,
		Message: message,
	}
	return s.sendTemplateEmail(adminEmail, "New Contact Form Message ✉️", "contact_notification.html", data)
}

func (s *EmailService) SendNewsletterWelcomeEmail(subscriberEmail string) error {
	data := NewsletterWelcomeData{
		Email: subscriberEmail,
	}
	return s.sendTemplateEmail(subscriberEmail, "Welcome to the DigitalMetrics Newsletter! 🎉", "newsletter_welcome.html", data)
}

func (s *EmailService) SendDailyLeadStats(
	adminEmail, adminName string,
	clientCount, contactCount int64,
	date time.Time,
) error {
	data := DailyLeadStatsData{
		AdminName:    adminName,
		ClientCount:  clientCount,
		ContactCount: contactCount,
		Date:         date,
	}
	return s.sendTemplateEmail(adminEmail, "Your Daily Lead Statistics 📊", "daily_lead_stats.html", data)
}
