package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jayagayathricodes/SmartTaskManager/models"
)

var DB *gorm.DB

// InitDB opens the MySQL connection, migrates the schema and seeds the
// placeholder user that owns every task until authentication exists.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := MigrateDB(DB, config.PlaceholderUserID); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	return nil
}

// MigrateDB creates the schema and the stand-in owner row. Tasks carry a
// foreign key to users, so the row must exist before the first insert.
func MigrateDB(db *gorm.DB, placeholderUserID string) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	if err != nil {
		return err
	}

	placeholder := models.User{
		ID:       placeholderUserID,
		Username: "temp",
		Email:    "temp@localhost",
	}
	return db.FirstOrCreate(&placeholder, models.User{ID: placeholderUserID}).Error
}
