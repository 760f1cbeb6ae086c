package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type CallRepository struct {
	db *gorm.DB
}

func NewCallRepository(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

func (r *CallRepository) Create(ctx context.Context, c *models.CallRequest) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, nil, nil)
}

func (r *CallRepository) List(ctx context.Context) ([]models.CallRequest, error) {
	var list []models.CallRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

func (r *CallRepository) UpdateStatus(ctx context.Context, id uint, status domain.CallStatus) (*models.CallRequest, error) {
	var c models.CallRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		c.Status = status
		return tx.Model(&c).Update("status", status).Error
	})
	if err != nil {
		return nil, translate(err, apperror.ErrCallNotFound, nil)
	}
	return &c, nil
}

func (r *CallRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.CallRequest{}, id), apperror.ErrCallNotFound)
}
