package config

import (
	"errors"
	"fmt"
	"os"
	"sponsorship/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), getEnv("DB_PORT", "5432"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the postgres connection, migrates the schema and seeds the first admin.
func BootDB() (*gorm.DB, error) {
	var err error

	db, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  GetDatabaseURL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return db, err
	}

	if err := seedAdmin(db); err != nil {
		return db, err
	}

	GetLogrusInstance().Info("DB initialized")
	return db, nil
}

// Migrate creates or updates every table. Parents are migrated before the tables that reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Child{},
		&domain.Sponsor{},
		&domain.Policy{},
		&domain.ContactMessage{},
	); err != nil {
		return fmt.Errorf("failed to migrate base tables: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.ChildProfilePicture{},
		&domain.ChildProgress{},
		&domain.ChildCorrespondence{},
		&domain.ChildIncident{},
		&domain.SponsorDeparture{},
		&domain.ChildSponsorship{},
		&domain.PolicyRead{},
		&domain.Profile{},
	); err != nil {
		return fmt.Errorf("failed to migrate relational tables: %w", err)
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	var existingAdmin domain.User
	err := db.Where("role = ?", domain.RoleAdmin).First(&existingAdmin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("could not look up admin account: %w", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		GetLogrusInstance().Warn("ADMIN_USERNAME or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %v", err)
	}

	admin := domain.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	GetLogrusInstance().Infof("Admin account %s created", username)
	return nil
}
