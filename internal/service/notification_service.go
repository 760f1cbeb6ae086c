package service

import (
	"context"
	"strings"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"
)

type NotificationService struct {
	repo NotificationStore
}

func NewNotificationService(repo NotificationStore) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationInput fields left nil keep their current value on update.
type NotificationInput struct {
	BackgroundImage *string
	Image           *string
	Text            *string
	SecondaryText   *string
	Coupon          *bool
	CouponCode      *string
}

func (s *NotificationService) Create(ctx context.Context, in NotificationInput) (*models.Notification, error) {
	if in.Text == nil || strings.TrimSpace(*in.Text) == "" {
		return nil, apperror.MissingFields("text")
	}
	n := &models.Notification{BackgroundImage: domain.DefaultNotificationBackground}
	if err := applyNotification(n, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) Update(ctx context.Context, id uint, in NotificationInput) (*models.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Text != nil && strings.TrimSpace(*in.Text) == "" {
		return nil, apperror.Validation("text must not be empty", "text")
	}
	if err := applyNotification(n, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) Get(ctx context.Context, id uint) (*models.Notification, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx)
}

func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func applyNotification(n *models.Notification, in NotificationInput) error {
	setText(&n.BackgroundImage, in.BackgroundImage)
	setText(&n.Image, in.Image)
	setText(&n.Text, in.Text)
	if in.SecondaryText != nil {
		n.SecondaryText = strings.TrimSpace(*in.SecondaryText)
	}
	if in.Coupon != nil {
		n.Coupon = *in.Coupon
	}
	if in.CouponCode != nil {
		n.CouponCode = strings.TrimSpace(*in.CouponCode)
	}
	if !n.Coupon {
		n.CouponCode = ""
	} else if n.CouponCode == "" {
		return apperror.MissingFields("couponCode")
	}
	return nil
}
