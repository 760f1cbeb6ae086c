package models

import (
	"time"

	"teenxcel/internal/domain"

	"github.com/shopspring/decimal"
)

// Payment is a snapshot of what the requester was quoted. Amounts are never
// recomputed after creation; Paid always equals OriginalAmount - DiscountAmount.
type Payment struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	Name             string               `gorm:"size:255;not null" json:"name"`
	Phone            string               `gorm:"size:10;not null" json:"phone"`
	School           string               `gorm:"size:255;not null" json:"school"`
	Sem              string               `gorm:"size:64;not null" json:"sem"`
	CourseCode       string               `gorm:"size:64;not null;index" json:"courseCode"`
	OriginalAmount   int64                `gorm:"not null" json:"originalAmount"`
	DiscountAmount   int64                `gorm:"not null;default:0" json:"discountAmount"`
	Paid             int64                `gorm:"not null" json:"paid"`
	CouponCode       *string              `gorm:"size:64" json:"couponCode"`
	CouponPercentage *decimal.Decimal     `gorm:"type:decimal(5,2)" json:"couponPercentage"`
	Proof            string               `gorm:"size:512;not null" json:"proof"`
	Status           domain.PaymentStatus `gorm:"size:16;not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}
