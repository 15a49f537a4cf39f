package db

import (
	"fmt"

	"github.com/zulandar/trestle/internal/auth"
	"github.com/zulandar/trestle/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.ProjectHealth{},
		&models.PaymentSchedule{},
		&models.MattersArising{},
		&models.ProjectTask{},
		&models.TaskComment{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedAdmin inserts an initial admin account. An existing account with the
// same email is left untouched.
func SeedAdmin(db *gorm.DB, email, password, fullName string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("db: seed admin %q: %w", email, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	}
	if fullName != "" {
		user.FullName = &fullName
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		return fmt.Errorf("db: seed admin %q: %w", email, result.Error)
	}
	return nil
}
