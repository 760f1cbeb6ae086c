package service

import (
	"context"

	"teenxcel/internal/domain"
	"teenxcel/internal/models"
)

// The interfaces below are satisfied by the gorm repositories in
// internal/repository. Lookups return apperror sentinels for missing rows.

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
}

type CourseStore interface {
	Create(ctx context.Context, c *models.Course) error
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id uint) error
}

type CouponStore interface {
	Create(ctx context.Context, c *models.Coupon) error
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, id uint) (*models.Payment, error)
	List(ctx context.Context, status domain.PaymentStatus) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id uint, from, to domain.PaymentStatus) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type CallStore interface {
	Create(ctx context.Context, c *models.CallRequest) error
	List(ctx context.Context) ([]models.CallRequest, error)
	UpdateStatus(ctx context.Context, id uint, status domain.CallStatus) (*models.CallRequest, error)
	Delete(ctx context.Context, id uint) error
}

type CareerStore interface {
	Create(ctx context.Context, c *models.CareerRequest) error
	List(ctx context.Context) ([]models.CareerRequest, error)
	Delete(ctx context.Context, id uint) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	List(ctx context.Context) ([]models.Notification, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id uint) error
}

// ObjectStore persists a local file and returns its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
}
