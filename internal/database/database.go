package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection using the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// AutoMigrate creates or updates the schema for all application tables.
// Unique indexes on id, uuid, nik and email columns are declared on the
// models so duplicate-key lookups cannot occur.
func (d *Database) AutoMigrate() error {
	return d.DB.AutoMigrate(
		&models.Resident{},
		&models.MailRequest{},
		&models.FinanceRecord{},
		&models.Announcement{},
		&models.Activity{},
		&models.SecurityReport{},
		&models.Report{},
		&models.User{},
		&models.SchedulerLog{},
	)
}

// Close closes the underlying database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
