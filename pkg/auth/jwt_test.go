package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	patientID := uuid.New()

	token, tokenID, expiresAt, err := svc.Generate(patientID, "Ada Obi", "ada@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, patientID, claims.PatientID)
	assert.Equal(t, "Ada Obi", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, tokenID, claims.ID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, _, err := NewJWTService("secret-a", time.Hour).Generate(uuid.New(), "Ada Obi", "ada@example.com")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, _, _, err := svc.Generate(uuid.New(), "Ada Obi", "ada@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
