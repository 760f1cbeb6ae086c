package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type CareerRepository struct {
	db *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

func (r *CareerRepository) Create(ctx context.Context, c *models.CareerRequest) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, nil, nil)
}

func (r *CareerRepository) List(ctx context.Context) ([]models.CareerRequest, error) {
	var list []models.CareerRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

func (r *CareerRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.CareerRequest{}, id), apperror.ErrCareerNotFound)
}
