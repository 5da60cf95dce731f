package database

import (
	"log"

	"vaxsched/config"
	"vaxsched/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global GORM handle.
var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB() {
	db, err := gorm.Open(mysql.Open(config.AppConfig.DatabaseDSN), &gorm.Config{
		// Duplicate-key violations must surface as gorm.ErrDuplicatedKey:
		// the unique (caregiver, date) index doubles as the double-booking guard.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to connect to MySQL: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Vaccine{},
		&models.CaregiverAvailability{},
		&models.Appointment{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to MySQL successfully!")
}
