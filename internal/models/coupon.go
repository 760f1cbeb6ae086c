package models

import (
	"time"

	"teenxcel/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Coupon is immutable once created; admins can only delete it.
type Coupon struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Code          string                      `gorm:"uniqueIndex;size:64;not null" json:"code"`
	OffPercentage decimal.Decimal             `gorm:"type:decimal(5,2);not null" json:"offPercentage"`
	MaxDiscount   *int64                      `json:"maxDiscount"`
	ExpiresAt     *time.Time                  `json:"expiryDate"`
	ValidCourses  datatypes.JSONSlice[string] `json:"validCourses"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Coupon) TableName() string {
	return "coupons"
}

func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// AppliesTo reports whether the coupon may be used for courseCode. An empty
// list means every course.
func (c *Coupon) AppliesTo(courseCode string) bool {
	if len(c.ValidCourses) == 0 {
		return true
	}
	for _, code := range c.ValidCourses {
		if code == courseCode {
			return true
		}
	}
	return false
}

func (c *Coupon) Applied() *domain.AppliedCoupon {
	return &domain.AppliedCoupon{
		Code:          c.Code,
		OffPercentage: c.OffPercentage,
		MaxDiscount:   c.MaxDiscount,
	}
}
