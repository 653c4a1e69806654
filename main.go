package main

import (
	"errors"
	"log"

	"skyzone-backend/config"
	"skyzone-backend/internal/api"
	"skyzone-backend/internal/database"
	"skyzone-backend/internal/models"
	"skyzone-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.User{}, &models.CardDesign{}, &models.Order{}, &models.Payment{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser()
	initCardDesigns()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser() {
	adminEmail := "admin@skyzone.com"
	adminPassword := "admin123"

	var adminUser models.User
	result := database.DB.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			adminUser = models.User{
				Email:    adminEmail,
				Name:     "Sky Zone Admin",
				Phone:    "+91 98765 43210",
				Password: string(hashedPassword),
				Role:     models.RoleAdmin,
			}

			if err := database.DB.Create(&adminUser).Error; err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			log.Println("Admin user created successfully!")
		} else {
			log.Fatalf("failed to check for admin user: %v", result.Error)
		}
	} else {
		log.Println("Admin user already exists.")
	}
}

func initCardDesigns() {
	var count int64
	if err := database.DB.Model(&models.CardDesign{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to check card designs: %v", err)
	}
	if count > 0 {
		return
	}

	designs := []models.CardDesign{
		{Name: "Student ID Card", Description: "Professional student identification card with photo and details", Price: 149, ImageURL: "/cards/student-id.jpg", IsActive: true, Category: "Student"},
		{Name: "Corporate ID Card", Description: "Premium corporate identity card for employees", Price: 249, ImageURL: "/cards/corporate-id.jpg", IsActive: true, Category: "Corporate"},
		{Name: "Event Pass Card", Description: "Durable event pass with custom design", Price: 199, ImageURL: "/cards/event-pass.jpg", IsActive: true, Category: "Event"},
		{Name: "Visitor ID Card", Description: "Temporary visitor identification with photo", Price: 99, ImageURL: "/cards/visitor-id.jpg", IsActive: true, Category: "Event"},
		{Name: "Staff ID Card", Description: "Professional staff badge with QR code", Price: 179, ImageURL: "/cards/staff-id.jpg", IsActive: true, Category: "Corporate"},
		{Name: "Conference Badge", Description: "Premium conference attendee badge", Price: 299, ImageURL: "/cards/conference-badge.jpg", IsActive: true, Category: "Event"},
	}

	if err := database.DB.Create(&designs).Error; err != nil {
		log.Fatalf("failed to seed card designs: %v", err)
	}
	log.Println("Card designs seeded successfully!")
}
