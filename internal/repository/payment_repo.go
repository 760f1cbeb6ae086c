package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return translate(r.db.WithContext(ctx).Create(p).Error, nil, nil)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err, apperror.ErrPaymentNotFound, nil)
	}
	return &p, nil
}

// List returns payments newest first, optionally filtered by status.
func (r *PaymentRepository) List(ctx context.Context, status domain.PaymentStatus) ([]models.Payment, error) {
	q := r.db.WithContext(ctx).Model(&models.Payment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Payment
	err := q.Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

// UpdateStatus moves a payment from one status to another. The row is only
// touched while it still holds from, so concurrent reviews cannot both win.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uint, from, to domain.PaymentStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error, nil, nil)
	}
	return res.RowsAffected == 1, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Payment{}, id), apperror.ErrPaymentNotFound)
}
