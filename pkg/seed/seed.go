package seed

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"digitalmetrics_backend/internal/model"
	"digitalmetrics_backend/pkg/rbac"
)

// SeedDemoUsers creates the three demo accounts used to try out the admin panel.
func SeedDemoUsers(db *gorm.DB) {
	demoUsers := []struct {
		Email    string
		Password string
		Name     string
		Role     rbac.Role
	}{
		{"admin@digitalmetrics.com", "admin123", "System Administrator", rbac.RoleAdministrator},
		{"manager@digitalmetrics.com", "manager123", "CRM Manager", rbac.RoleCRMManager},
		{"sales@digitalmetrics.com", "sales123", "Sales Representative", rbac.RoleSales},
	}

	for _, demo := range demoUsers {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", demo.Email, err)
			continue
		}

		user := model.User{
			Email:    demo.Email,
			Password: string(hashedPassword),
			Name:     demo.Name,
			Role:     demo.Role,
			IsActive: true,
		}

		result := db.Where(model.User{Email: demo.Email}).FirstOrCreate(&user)
		if result.Error != nil {
			log.Printf("Error creating demo user %s: %v", demo.Email, result.Error)
		}
	}

	log.Println("Demo users seeded successfully!")
}

// SeedServicePages creates the marketing service catalog entries.
func SeedServicePages(db *gorm.DB) {
	pages := []model.ServicePage{
		{
			Title:       "SEO Optimization",
			Subtitle:    "Dominate Search Rankings with Data-Driven Strategies",
			Description: "Comprehensive SEO combining technical excellence with content strategy to drive organic traffic and improve search visibility.",
			Benefits:    datatypes.JSON(`["Increased Organic Traffic","Higher Search Rankings","Better User Experience","Improved Site Speed","Mobile Optimization","Local SEO Dominance"]`),
			Features:    datatypes.JSON(`["Comprehensive SEO Audit & Strategy","Keyword Research & Competitive Analysis","On-Page & Technical SEO Optimization","Content Strategy & Creation","Link Building & Authority Development","Performance Tracking & Reporting"]`),
			Process:     datatypes.JSON(`[{"step":1,"title":"SEO Audit","description":"Comprehensive analysis of your current SEO performance and opportunities"},{"step":2,"title":"Strategy Development","description":"Custom SEO roadmap based on your business goals and market analysis"},{"step":3,"title":"Implementation","description":"Execute optimization strategies and monitor performance improvements"}]`),
			Pricing:     datatypes.JSON(`{"starter":{"price":"$2,500/mo"},"professional":{"price":"$5,000/mo"}}`),
		},
		{
			Title:       "Social Media Marketing",
			Subtitle:    "Build Engaged Communities Around Your Brand",
			Description: "Full-funnel social strategies across the channels where your audience already spends time, from organic content to paid amplification.",
			Benefits:    datatypes.JSON(`["Brand Awareness","Community Growth","Higher Engagement","Qualified Traffic"]`),
			Features:    datatypes.JSON(`["Channel Strategy & Audit","Content Calendar & Production","Community Management","Paid Social Campaigns","Monthly Analytics Reporting"]`),
			Process:     datatypes.JSON(`[{"step":1,"title":"Audit","description":"Review current presence and competitor landscape"},{"step":2,"title":"Strategy","description":"Define channels, voice and content pillars"},{"step":3,"title":"Execution","description":"Publish, engage and iterate on performance"}]`),
		},
		{
			Title:       "PPC Campaigns",
			Subtitle:    "Turn Ad Spend into Predictable Revenue",
			Description: "Performance-focused paid search and display campaigns with rigorous testing and transparent reporting.",
			Benefits:    datatypes.JSON(`["Immediate Traffic","Measurable ROI","Audience Targeting","Budget Control"]`),
			Features:    datatypes.JSON(`["Campaign Structure & Setup","Keyword & Audience Research","Ad Copy & Creative Testing","Landing Page Optimization","Bid Management & Reporting"]`),
		},
		{
			Title:       "Custom Websites",
			Subtitle:    "High-Performance Sites Built to Convert",
			Description: "Design and development of fast, accessible marketing sites that turn visitors into leads.",
			Benefits:    datatypes.JSON(`["Faster Load Times","Higher Conversion Rates","Mobile-First Design","Easy Content Management"]`),
			Features:    datatypes.JSON(`["UX Research & Wireframing","Responsive Design","Performance Optimization","Analytics Integration","Ongoing Support"]`),
		},
	}

	for _, page := range pages {
		result := db.Where(model.ServicePage{Title: page.Title}).FirstOrCreate(&page)
		if result.Error != nil {
			log.Printf("Error creating service page %s: %v", page.Title, result.Error)
		}
	}

	log.Println("Service pages seeded successfully!")
}
