package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinlog/backend/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Registration creates an empty profile alongside the user.
	var profile models.UserProfile
	var user models.User
	require.NoError(t, db.Where("email = ?", "flame@example.com").First(&user).Error)
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)

	token, err = svc.Login("flame@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("Other", "flame@example.com", "different")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Login("flame@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)

	var user models.User
	require.NoError(t, db.Where("email = ?", "flame@example.com").First(&user).Error)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	claims, err := svc.ValidateToken("invalid.token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(nil, "other-secret")
	token, err := other.generateToken(uuid.New())
	require.NoError(t, err)

	claims, err = svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
