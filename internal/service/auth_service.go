package service

import (
	"context"
	"strings"

	"teenxcel/config"
	"teenxcel/internal/apperror"
	"teenxcel/internal/auth"
	"teenxcel/internal/models"
)

type AuthService struct {
	cfg    *config.JWTConfig
	admins AdminStore
}

func NewAuthService(cfg *config.JWTConfig, admins AdminStore) *AuthService {
	return &AuthService{cfg: cfg, admins: admins}
}

// Login verifies admin credentials and issues a signed session token.
// Unknown emails and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	email = strings.TrimSpace(email)
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, "", apperror.MissingFields(missing...)
	}

	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if apperror.CodeOf(err) == apperror.CodeUnauthenticated {
			auth.BurnPasswordCheck(password)
			return nil, "", apperror.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, "", apperror.ErrInvalidCredentials
	}
	token, err := auth.GenerateAdminToken(s.cfg, a.ID, a.Email)
	if err != nil {
		return nil, "", apperror.Internal("could not issue token", err)
	}
	return a, token, nil
}

// Authenticate resolves a session token to a live admin account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, apperror.ErrUnauthenticated
	}
	claims, err := auth.ParseAdminToken(s.cfg, token)
	if err != nil {
		return nil, apperror.ErrUnauthenticated
	}
	if _, err := s.admins.GetByID(ctx, claims.AdminID); err != nil {
		return nil, err
	}
	return claims, nil
}
