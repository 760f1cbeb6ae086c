package handler

import (
	"context"
	"os"
	"sync"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"
)

type fakeCourses map[string]*models.Course

func (f fakeCourses) Create(_ context.Context, c *models.Course) error {
	if _, ok := f[c.CourseCode]; ok {
		return apperror.ErrDuplicateCourse
	}
	f[c.CourseCode] = c
	return nil
}

func (f fakeCourses) GetByCode(_ context.Context, code string) (*models.Course, error) {
	if c, ok := f[code]; ok {
		return c, nil
	}
	return nil, apperror.ErrCourseNotFound
}

func (f fakeCourses) List(context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f {
		out = append(out, *c)
	}
	return out, nil
}

func (f fakeCourses) Update(context.Context, *models.Course) error { return nil }
func (f fakeCourses) Delete(context.Context, uint) error           { return nil }

type fakeCoupons map[string]*models.Coupon

func (f fakeCoupons) Create(_ context.Context, c *models.Coupon) error {
	if _, ok := f[c.Code]; ok {
		return apperror.ErrDuplicateCoupon
	}
	c.ID = uint(len(f) + 1)
	f[c.Code] = c
	return nil
}

func (f fakeCoupons) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	if c, ok := f[code]; ok {
		return c, nil
	}
	return nil, apperror.ErrInvalidCoupon
}

func (f fakeCoupons) List(context.Context) ([]models.Coupon, error) { return nil, nil }

func (f fakeCoupons) Delete(_ context.Context, id uint) error {
	for code, c := range f {
		if c.ID == id {
			delete(f, code)
			return nil
		}
	}
	return apperror.ErrCouponNotFound
}

type fakePayments struct {
	mu   sync.Mutex
	rows []*models.Payment
}

func (f *fakePayments) Create(_ context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakePayments) GetByID(_ context.Context, id uint) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperror.ErrPaymentNotFound
}

func (f *fakePayments) List(_ context.Context, status domain.PaymentStatus) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, p := range f.rows {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePayments) UpdateStatus(_ context.Context, id uint, from, to domain.PaymentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		if p.ID == id && p.Status == from {
			p.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayments) Delete(context.Context, uint) error { return nil }

// fakeProofs records which staged files existed at upload time.
type fakeProofs struct {
	err      error
	uploaded []string
	existed  []bool
}

func (f *fakeProofs) Upload(_ context.Context, localPath, _ string) (string, error) {
	_, statErr := os.Stat(localPath)
	f.uploaded = append(f.uploaded, localPath)
	f.existed = append(f.existed, statErr == nil)
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example/proofs/" + localPath, nil
}
