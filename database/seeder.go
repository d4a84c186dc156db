package database

import (
	"fmt"

	"grc-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders creates the default admin user when the users table is empty.
func RunSeeders(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Failed to hash seed password:", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@localhost",
		Role:     "ADMIN",
	}

	if err := db.Create(&admin).Error; err != nil {
		fmt.Println("Failed to seed admin user:", err)
		return
	}

	fmt.Println("Seeded default admin user")
}
