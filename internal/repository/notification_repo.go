package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return translate(r.db.WithContext(ctx).Create(n).Error, nil, nil)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, translate(err, apperror.ErrNotificationNotFound, nil)
	}
	return &n, nil
}

func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

func (r *NotificationRepository) Update(ctx context.Context, n *models.Notification) error {
	return translate(r.db.WithContext(ctx).Save(n).Error, apperror.ErrNotificationNotFound, nil)
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Notification{}, id), apperror.ErrNotificationNotFound)
}
