// database/migrate.go
package database

import (
	"grc-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.GRCSpare{},
		&models.GRCDispute{},
		&models.GRCReturnHistory{},
		&models.GRCChallan{},
		&models.Complaint{},
	)
}
