package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/farmledger/api/internal/config"
	"github.com/farmledger/api/internal/models"
)

// Database wraps the GORM handle and provides lifecycle operations.
type Database struct {
	DB *gorm.DB
}

// NewPostgres opens a PostgreSQL-backed GORM handle, configures the
// underlying connection pool, verifies connectivity, and migrates the schema.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.PoolMin)
	sqlDB.SetMaxOpenConns(cfg.PoolMax)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &Database{DB: db}, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Farm{},
		&models.Field{},
		&models.Crop{},
		&models.Fertilization{},
		&models.PlantProtection{},
		&models.CultivationOperation{},
		&models.ReferenceParcel{},
		&models.SoilMeasurement{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks if the database connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (d *Database) Close() {
	if d.DB == nil {
		return
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
