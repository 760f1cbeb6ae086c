package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/events"
	"teenxcel/internal/models"

	"go.uber.org/zap"
)

type PaymentService struct {
	payments PaymentStore
	courses  CourseStore
	coupons  *CouponService
	proofs   ObjectStore
	events   events.Publisher
	folder   string
	log      *zap.Logger
}

func NewPaymentService(
	payments PaymentStore,
	courses CourseStore,
	coupons *CouponService,
	proofs ObjectStore,
	publisher events.Publisher,
	folder string,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		courses:  courses,
		coupons:  coupons,
		proofs:   proofs,
		events:   publisher,
		folder:   folder,
		log:      log.Named("payment"),
	}
}

// SubmitPaymentInput is a requester's payment claim. ProofPath is a local file
// owned by the caller; the service never removes it.
type SubmitPaymentInput struct {
	Name       string
	Phone      string
	School     string
	Sem        string
	CourseCode string
	CouponCode string
	ProofPath  string
}

func (in *SubmitPaymentInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.School = strings.TrimSpace(in.School)
	in.Sem = strings.TrimSpace(in.Sem)
	in.CourseCode = strings.TrimSpace(in.CourseCode)
	in.CouponCode = strings.TrimSpace(in.CouponCode)
}

func (in *SubmitPaymentInput) missing() []string {
	var fields []string
	for _, f := range []struct {
		name, value string
	}{
		{"name", in.Name},
		{"phone", in.Phone},
		{"school", in.School},
		{"sem", in.Sem},
		{"courseCode", in.CourseCode},
	} {
		if f.value == "" {
			fields = append(fields, f.name)
		}
	}
	return fields
}

// Submit prices the course, stores the proof and records exactly one pending
// payment. Nothing is written when any check fails.
func (s *PaymentService) Submit(ctx context.Context, in SubmitPaymentInput) (*models.Payment, error) {
	in.normalize()
	if missing := in.missing(); len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}
	if !domain.ValidPhone(in.Phone) {
		return nil, apperror.ErrInvalidPhone
	}

	course, err := s.courses.GetByCode(ctx, in.CourseCode)
	if err != nil {
		return nil, err
	}
	applied, err := s.coupons.Resolve(ctx, in.CouponCode, course.CourseCode)
	if err != nil {
		return nil, err
	}
	quote, err := domain.ComputeDiscount(course.Price, applied)
	if err != nil {
		return nil, err
	}

	if in.ProofPath == "" {
		return nil, apperror.ErrProofRequired
	}
	proofURL, err := s.proofs.Upload(ctx, in.ProofPath, s.folder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrProofUploadFailed, err)
	}

	p := &models.Payment{
		Name:           in.Name,
		Phone:          in.Phone,
		School:         in.School,
		Sem:            in.Sem,
		CourseCode:     course.CourseCode,
		OriginalAmount: quote.OriginalAmount,
		DiscountAmount: quote.DiscountAmount,
		Paid:           quote.FinalAmount,
		Proof:          proofURL,
		Status:         domain.PaymentPending,
	}
	if applied != nil {
		code, pct := applied.Code, applied.OffPercentage
		p.CouponCode = &code
		p.CouponPercentage = &pct
	}
	if err := s.payments.Create(ctx, p); err != nil {
		s.log.Error("payment insert failed after proof upload", zap.String("proof", proofURL), zap.Error(err))
		return nil, err
	}

	s.publish(ctx, events.PaymentSubmitted, p)
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, status string) ([]models.Payment, error) {
	var filter domain.PaymentStatus
	if status != "" {
		st, ok := domain.ParsePaymentStatus(status)
		if !ok {
			return nil, apperror.ErrInvalidStatus
		}
		filter = st
	}
	return s.payments.List(ctx, filter)
}

// UpdateStatus applies an admin review. Setting the current status again is a
// no-op; moving out of verified or rejected is a conflict.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Payment, error) {
	next, ok := domain.ParsePaymentStatus(strings.TrimSpace(status))
	if !ok {
		return nil, apperror.ErrInvalidStatus
	}
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == next {
		return p, nil
	}
	if !p.Status.CanTransitionTo(next) {
		return nil, apperror.ErrIllegalTransition
	}

	updated, err := s.payments.UpdateStatus(ctx, id, p.Status, next)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Someone else reviewed it first.
		current, err := s.payments.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status == next {
			return current, nil
		}
		return nil, apperror.ErrIllegalTransition
	}

	p.Status = next
	s.publish(ctx, events.PaymentStatusChanged, p)
	return p, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	return s.payments.Delete(ctx, id)
}

// publishTimeout bounds how long a committed request waits on the broker.
var publishTimeout = 3 * time.Second

// publish is best effort: the payment is already committed.
func (s *PaymentService) publish(ctx context.Context, eventType string, p *models.Payment) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	err := s.events.Publish(ctx, events.Event{
		Type:    eventType,
		Key:     strconv.FormatUint(uint64(p.ID), 10),
		Payload: p,
	})
	if err != nil {
		s.log.Warn("event publish failed",
			zap.String("event", eventType),
			zap.Uint("payment_id", p.ID),
			zap.Error(err),
		)
	}
}
