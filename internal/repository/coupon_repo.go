package repository

import (
	"context"

	"teenxcel/internal/apperror"
	"teenxcel/internal/models"

	"gorm.io/gorm"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) Create(ctx context.Context, c *models.Coupon) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, nil, apperror.ErrDuplicateCoupon)
}

// GetByCode returns ErrInvalidCoupon when no coupon has that code.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error; err != nil {
		return nil, translate(err, apperror.ErrInvalidCoupon, nil)
	}
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	var list []models.Coupon
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, translate(err, nil, nil)
}

func (r *CouponRepository) Delete(ctx context.Context, id uint) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Coupon{}, id), apperror.ErrCouponNotFound)
}
