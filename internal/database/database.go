package database

import (
	"context"
	"errors"

	"teenxcel/config"
	"teenxcel/internal/auth"
	"teenxcel/internal/logger"
	"teenxcel/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func NewDB(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.NewGormLogger(log, cfg.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Course{},
		&models.Coupon{},
		&models.Payment{},
		&models.CallRequest{},
		&models.CareerRequest{},
		&models.Notification{},
	)
}

// SeedAdmin creates the configured admin account if it does not exist yet.
// Existing accounts are left untouched so a rotated password is not reverted.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *config.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Warn("admin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}
	var existing models.Admin
	err := db.WithContext(ctx).Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(&models.Admin{Email: cfg.Email, PasswordHash: hash}).Error; err != nil {
		return err
	}
	log.Info("admin account seeded", zap.String("email", cfg.Email))
	return nil
}
