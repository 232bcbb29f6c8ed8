package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/repository"
	pkgauth "github.com/telehealth-connect/patient-api/pkg/auth"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
	"github.com/telehealth-connect/patient-api/pkg/security"
)

const (
	minNameLen     = 2
	minPasswordLen = 6
	bcryptCost     = 12
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Patient, error)
	Login(ctx context.Context, email, password string) (*model.SessionResponse, error)
	Logout(ctx context.Context, tokenID string) error
	ValidateSession(ctx context.Context, token string) (*pkgauth.SessionClaims, error)
}

type Service struct {
	patientRepo repository.PatientRepository
	sessionRepo repository.SessionRepository
	hasher      security.PasswordHasher
	tokens      pkgauth.TokenService
}

func NewService(patientRepo repository.PatientRepository, sessionRepo repository.SessionRepository, tokens pkgauth.TokenService) *Service {
	return &Service{
		patientRepo: patientRepo,
		sessionRepo: sessionRepo,
		hasher:      security.NewBcryptHasher(bcryptCost),
		tokens:      tokens,
	}
}

// Register validates the request rule by rule and creates the patient.
// The first failing rule aborts with its message and no mutation.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Patient, error) {
	if len(strings.TrimSpace(req.Name)) < minNameLen {
		return nil, apperrors.NewBadRequest("name must be at least 2 characters long", nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.NewBadRequest("invalid email format", nil)
	}
	if len(req.Password) < minPasswordLen {
		return nil, apperrors.NewBadRequest("password must be at least 6 characters long", nil)
	}

	existing, err := s.patientRepo.GetByEmail(ctx, req.Email)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &model.Patient{
		Base: model.Base{
			ID: uuid.New(),
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Login compares credentials and establishes a session. Unknown email and
// wrong password produce the same error so neither field leaks.
func (s *Service) Login(ctx context.Context, email, password string) (*model.SessionResponse, error) {
	patient, err := s.patientRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(patient.PasswordHash, password); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, tokenID, expiresAt, err := s.tokens.Generate(patient.ID, patient.Name, patient.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.sessionRepo.Store(ctx, tokenID, patient.ID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &model.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      patient.Name,
		Redirect:  "/dashboard",
	}, nil
}

func (s *Service) Logout(ctx context.Context, tokenID string) error {
	return s.sessionRepo.Delete(ctx, tokenID)
}

// ValidateSession checks the token signature and that the session has not
// been revoked by logout.
func (s *Service) ValidateSession(ctx context.Context, token string) (*pkgauth.SessionClaims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	live, err := s.sessionRepo.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !live {
		return nil, pkgauth.ErrInvalidToken
	}
	return claims, nil
}
