package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims are the claims carried by a patient session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	PatientID uuid.UUID `json:"patient_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// TokenService issues and validates patient session tokens.
type TokenService interface {
	Generate(patientID uuid.UUID, name, email string) (token, tokenID string, expiresAt time.Time, err error)
	Validate(token string) (*SessionClaims, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a TokenService backed by HMAC-signed JWTs.
func NewJWTService(secret string, expiry time.Duration) TokenService {
	return &jwtService{secret: []byte(secret), expiry: expiry}
}

func (s *jwtService) Generate(patientID uuid.UUID, name, email string) (string, string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)
	tokenID := uuid.New().String()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   patientID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		PatientID: patientID,
		Name:      name,
		Email:     email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, tokenID, expiresAt, nil
}

func (s *jwtService) Validate(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
