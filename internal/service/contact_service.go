package service

import (
	"context"
	"net/mail"
	"strings"

	"teenxcel/internal/apperror"
	"teenxcel/internal/domain"
	"teenxcel/internal/models"
)

// ContactService handles call-back and join-us requests from the public site.
type ContactService struct {
	calls   CallStore
	careers CareerStore
}

func NewContactService(calls CallStore, careers CareerStore) *ContactService {
	return &ContactService{calls: calls, careers: careers}
}

type CallRequestInput struct {
	Name   string
	Phone  string
	School string
	Sem    string
}

func (s *ContactService) RequestCall(ctx context.Context, in CallRequestInput) (*models.CallRequest, error) {
	c := &models.CallRequest{
		Name:   strings.TrimSpace(in.Name),
		Phone:  strings.TrimSpace(in.Phone),
		School: strings.TrimSpace(in.School),
		Sem:    strings.TrimSpace(in.Sem),
		Status: domain.CallPending,
	}
	if missing := blank(map[string]string{"name": c.Name, "phone": c.Phone, "school": c.School, "sem": c.Sem},
		"name", "phone", "school", "sem"); len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}
	if !domain.ValidPhone(c.Phone) {
		return nil, apperror.ErrInvalidPhone
	}
	if err := s.calls.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) ListCalls(ctx context.Context) ([]models.CallRequest, error) {
	return s.calls.List(ctx)
}

func (s *ContactService) UpdateCallStatus(ctx context.Context, id uint, status string) (*models.CallRequest, error) {
	st, ok := domain.ParseCallStatus(strings.TrimSpace(status))
	if !ok {
		return nil, apperror.ErrInvalidStatus
	}
	return s.calls.UpdateStatus(ctx, id, st)
}

func (s *ContactService) DeleteCall(ctx context.Context, id uint) error {
	return s.calls.Delete(ctx, id)
}

type CareerRequestInput struct {
	Name       string
	Skills     string
	Experience string
	Phone      string
	Email      string
	Location   string
}

func (s *ContactService) RequestJoin(ctx context.Context, in CareerRequestInput) (*models.CareerRequest, error) {
	c := &models.CareerRequest{
		Name:       strings.TrimSpace(in.Name),
		Skills:     strings.TrimSpace(in.Skills),
		Experience: strings.TrimSpace(in.Experience),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Location:   strings.TrimSpace(in.Location),
	}
	fields := map[string]string{
		"name": c.Name, "skills": c.Skills, "experience": c.Experience,
		"phone": c.Phone, "email": c.Email, "location": c.Location,
	}
	if missing := blank(fields, "name", "skills", "experience", "phone", "email", "location"); len(missing) > 0 {
		return nil, apperror.MissingFields(missing...)
	}
	if !domain.ValidPhone(c.Phone) {
		return nil, apperror.ErrInvalidPhone
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return nil, apperror.Validation("email is not valid", "email")
	}
	if err := s.careers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) ListJoinRequests(ctx context.Context) ([]models.CareerRequest, error) {
	return s.careers.List(ctx)
}

func (s *ContactService) DeleteJoinRequest(ctx context.Context, id uint) error {
	return s.careers.Delete(ctx, id)
}

// blank returns the names in order whose value is empty.
func blank(values map[string]string, order ...string) []string {
	var out []string
	for _, name := range order {
		if values[name] == "" {
			out = append(out, name)
		}
	}
	return out
}
