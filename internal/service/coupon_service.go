package service

import (
	"context"
	"strings"
	"time"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CouponService struct {
	coupons CouponStore
	courses CourseStore
	now     func() time.Time
}

func NewCouponService(coupons CouponStore, courses CourseStore) *CouponService {
	return &CouponService{coupons: coupons, courses: courses, now: time.Now}
}

// Resolve checks couponCode against courseCode. An empty code is not an
// error: it returns a nil coupon, meaning no discount. Resolve never writes.
func (s *CouponService) Resolve(ctx context.Context, couponCode, courseCode string) (*domain.AppliedCoupon, error) {
	code := strings.TrimSpace(couponCode)
	if code == "" {
		return nil, nil
	}
	c, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c.Expired(s.now()) {
		return nil, apperror.ErrExpiredCoupon
	}
	if !c.AppliesTo(courseCode) {
		return nil, apperror.ErrCourseNotEligible
	}
	return c.Applied(), nil
}

type CouponQuote struct {
	CouponCode         string          `json:"couponCode"`
	MaxDiscount        *int64          `json:"maxDiscount"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	OriginalAmount     int64           `json:"originalAmount"`
	DiscountAmount     int64           `json:"discountAmount"`
	FinalAmount        int64           `json:"finalAmount"`
}

// Preview prices a course with a coupon using the same lookup and arithmetic
// as a payment submission.
func (s *CouponService) Preview(ctx context.Context, couponCode, courseCode string) (*CouponQuote, error) {
	couponCode, courseCode = strings.TrimSpace(couponCode), strings.TrimSpace(courseCode)
	var missing []string
	if couponCode == "" {
		missing = append(missing, "couponCode")
	}
	if courseCode == "" {
		missing = append(missing, "courseCode")
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}

	course, err := s.courses.GetByCode(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	applied, err := s.Resolve(ctx, couponCode, course.CourseCode)
	if err != nil {
		return nil, err
	}
	q, err := domain.ComputeDiscount(course.Price, applied)
	if err != nil {
		return nil, err
	}
	return &CouponQuote{
		CouponCode:         applied.Code,
		MaxDiscount:        applied.MaxDiscount,
		DiscountPercentage: applied.OffPercentage,
		OriginalAmount:     q.OriginalAmount,
		DiscountAmount:     q.DiscountAmount,
		FinalAmount:        q.FinalAmount,
	}, nil
}

type CreateCouponInput struct {
	Code          string
	OffPercentage decimal.Decimal
	MaxDiscount   *int64
	ExpiresAt     *time.Time
	ValidCourses  []string
}

func (s *CouponService) Create(ctx context.Context, in CreateCouponInput) (*models.Coupon, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, apperror.MissingFields("code")
	}
	if !domain.ValidPercentage(in.OffPercentage) {
		return nil, apperror.Validation("offPercentage must be greater than 0 and at most 100", "offPercentage")
	}
	if in.MaxDiscount != nil && *in.MaxDiscount < 0 {
		return nil, apperror.Validation("maxDiscount must not be negative", "maxDiscount")
	}

	c := &models.Coupon{
		Code:          code,
		OffPercentage: in.OffPercentage,
		MaxDiscount:   in.MaxDiscount,
		ExpiresAt:     in.ExpiresAt,
		ValidCourses:  normalizeCodes(in.ValidCourses),
	}
	if err := s.coupons.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *CouponService) Delete(ctx context.Context, id uint) error {
	return s.coupons.Delete(ctx, id)
}

// normalizeCodes trims and de-duplicates course codes, keeping order.
func normalizeCodes(codes []string) datatypes.JSONSlice[string] {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(codes))
	out := make(datatypes.JSONSlice[string], 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
