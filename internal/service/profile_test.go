package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinlog/backend/internal/models"
	"github.com/kinlog/backend/internal/types"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestGetProfileWithoutMetrics(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	_, err := auth.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "flame@example.com").First(&user).Error)

	svc := NewProfileService(db)
	view, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Flame", view.Name)
	assert.Nil(t, view.Health, "no health summary before body metrics are set")
}

func TestUpdateProfileComputesHealthSummary(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	_, err := auth.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "flame@example.com").First(&user).Error)

	svc := NewProfileService(db)
	view, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		Gender:        strPtr("male"),
		BirthDate:     strPtr("1996-06-15"),
		HeightCm:      f64Ptr(175),
		WeightKg:      f64Ptr(70),
		ActivityLevel: strPtr("sedentary"),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Health)

	assert.InDelta(t, 22.86, view.Health.BMI, 0.01)
	assert.Equal(t, view.Health.BMR*1.2, view.Health.TDEE)

	// Updates persist and GetProfile recomputes the same summary.
	again, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, again.Health)
	assert.Equal(t, view.Health.BMR, again.Health.BMR)
	assert.Equal(t, 175.0, again.HeightCm)
}

func TestUpdateProfileRejectsBadBirthDate(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret")
	_, err := auth.Register("Flame", "flame@example.com", "secret123")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "flame@example.com").First(&user).Error)

	svc := NewProfileService(db)
	_, err = svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		BirthDate: strPtr("15/06/1996"),
	})
	assert.ErrorIs(t, err, ErrInvalidProfileField)
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
