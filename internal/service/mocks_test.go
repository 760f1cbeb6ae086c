package service

import (
	"context"

	"teenxcel/internal/domain"
	"teenxcel/internal/events"
	"teenxcel/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockAdminStore struct{ mock.Mock }

func (m *mockAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockAdminStore) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

type mockCourseStore struct{ mock.Mock }

func (m *mockCourseStore) Create(ctx context.Context, c *models.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourseStore) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*models.Course)
	return c, args.Error(1)
}

func (m *mockCourseStore) List(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Course)
	return list, args.Error(1)
}

func (m *mockCourseStore) Update(ctx context.Context, c *models.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourseStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCouponStore struct{ mock.Mock }

func (m *mockCouponStore) Create(ctx context.Context, c *models.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCouponStore) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*models.Coupon)
	return c, args.Error(1)
}

func (m *mockCouponStore) List(ctx context.Context) ([]models.Coupon, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Coupon)
	return list, args.Error(1)
}

func (m *mockCouponStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockPaymentStore struct{ mock.Mock }

func (m *mockPaymentStore) Create(ctx context.Context, p *models.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPaymentStore) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Payment)
	return p, args.Error(1)
}

func (m *mockPaymentStore) List(ctx context.Context, status domain.PaymentStatus) ([]models.Payment, error) {
	args := m.Called(ctx, status)
	list, _ := args.Get(0).([]models.Payment)
	return list, args.Error(1)
}

func (m *mockPaymentStore) UpdateStatus(ctx context.Context, id uint, from, to domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockPaymentStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCallStore struct{ mock.Mock }

func (m *mockCallStore) Create(ctx context.Context, c *models.CallRequest) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCallStore) List(ctx context.Context) ([]models.CallRequest, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.CallRequest)
	return list, args.Error(1)
}

func (m *mockCallStore) UpdateStatus(ctx context.Context, id uint, status domain.CallStatus) (*models.CallRequest, error) {
	args := m.Called(ctx, id, status)
	c, _ := args.Get(0).(*models.CallRequest)
	return c, args.Error(1)
}

func (m *mockCallStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockCareerStore struct{ mock.Mock }

func (m *mockCareerStore) Create(ctx context.Context, c *models.CareerRequest) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCareerStore) List(ctx context.Context) ([]models.CareerRequest, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.CareerRequest)
	return list, args.Error(1)
}

func (m *mockCareerStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationStore) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*models.Notification)
	return n, args.Error(1)
}

func (m *mockNotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Notification)
	return list, args.Error(1)
}

func (m *mockNotificationStore) Update(ctx context.Context, n *models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, localPath, folder string) (string, error) {
	args := m.Called(ctx, localPath, folder)
	return args.String(0), args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockPublisher) Close() error { return nil }
