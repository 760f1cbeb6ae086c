package domain

import (
	"teenxcel/internal/apperror"

	"github.com/shopspring/decimal"
)

// MaxPercentage is the largest share a coupon may take off.
var MaxPercentage = decimal.NewFromInt(100)

// ValidPercentage reports whether p is accepted on a new coupon: above zero
// and at most MaxPercentage.
func ValidPercentage(p decimal.Decimal) bool {
	return p.IsPositive() && !p.GreaterThan(MaxPercentage)
}

// AppliedCoupon is a coupon that passed lookup for a specific course.
type AppliedCoupon struct {
	Code          string
	OffPercentage decimal.Decimal
	MaxDiscount   *int64
}

type Quote struct {
	OriginalAmount int64
	DiscountAmount int64
	FinalAmount    int64
	Coupon         *AppliedCoupon
}

// ComputeDiscount prices original against coupon. A nil coupon means no
// discount. The percentage share is truncated toward zero and then capped by
// MaxDiscount when the coupon has one.
func ComputeDiscount(original int64, coupon *AppliedCoupon) (Quote, error) {
	if original < 0 {
		return Quote{}, apperror.ErrInvalidAmount
	}
	q := Quote{OriginalAmount: original, FinalAmount: original, Coupon: coupon}
	if coupon == nil {
		return q, nil
	}
	if coupon.OffPercentage.IsNegative() || coupon.OffPercentage.GreaterThan(MaxPercentage) {
		return Quote{}, apperror.ErrCorruptCoupon
	}
	if coupon.MaxDiscount != nil && *coupon.MaxDiscount < 0 {
		return Quote{}, apperror.ErrCorruptCoupon
	}

	discount := decimal.NewFromInt(original).Mul(coupon.OffPercentage).Shift(-2).Floor().IntPart()
	if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
		discount = *coupon.MaxDiscount
	}
	if discount < 0 || discount > original {
		return Quote{}, apperror.ErrCorruptCoupon
	}

	q.DiscountAmount = discount
	q.FinalAmount = original - discount
	return q, nil
}
