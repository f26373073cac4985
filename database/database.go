package database

import (
	"fmt"
	"log"
	"os"

	"tamilsangam-app/internal/domain/catalog"
	"tamilsangam-app/internal/domain/content"
	"tamilsangam-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&users.AdminUser{},
		&catalog.Poster{},
		&content.Record{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// SeedAdmin inserts the bootstrap admin account when none exists.
// Email and bcrypt hash come from the environment so no credential
// ever lives in the repo.
func SeedAdmin(email, passwordHash string) {
	if email == "" || passwordHash == "" {
		return
	}

	var count int64
	if err := DB.Model(&users.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatal("❌ Failed to check admin account:", err)
	}
	if count > 0 {
		return
	}

	admin := users.AdminUser{
		Email:    email,
		Password: passwordHash,
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("❌ Failed to seed admin account:", err)
	}
	fmt.Println("✅ Seeded admin account:", email)
}
