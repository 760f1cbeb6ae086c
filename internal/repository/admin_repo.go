package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, translate(err, apperror.ErrInvalidCredentials, nil)
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, translate(err, apperror.ErrUnauthenticated, nil)
	}
	return &a, nil
}
