package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinlog/backend/internal/health"
	"github.com/kinlog/backend/internal/models"
	"github.com/kinlog/backend/internal/types"
)

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrInvalidProfileField = errors.New("invalid profile field")
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// ProfileView is the profile plus the derived health summary. The summary is
// nil until the user has entered height and weight.
type ProfileView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Gender        string          `json:"gender"`
	BirthDate     *time.Time      `json:"birth_date"`
	HeightCm      float64         `json:"height_cm"`
	WeightKg      float64         `json:"weight_kg"`
	ActivityLevel string          `json:"activity_level"`
	Health        *health.Summary `json:"health"`
}

// GetProfile retrieves a user's profile with its health summary
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return s.buildView(&user, &profile), nil
}

// UpdateProfile updates a user's profile and recomputes the health summary
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*ProfileView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, err
		}
	}

	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: birth_date must be formatted as YYYY-MM-DD", ErrInvalidProfileField)
		}
		profile.BirthDate = &birthDate
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return s.buildView(&user, &profile), nil
}

func (s *ProfileService) buildView(user *models.User, profile *models.UserProfile) *ProfileView {
	view := &ProfileView{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Gender:        profile.Gender,
		BirthDate:     profile.BirthDate,
		HeightCm:      profile.HeightCm,
		WeightKg:      profile.WeightKg,
		ActivityLevel: profile.ActivityLevel,
	}

	if profile.HeightCm > 0 && profile.WeightKg > 0 && profile.BirthDate != nil {
		summary, err := health.BuildSummary(
			health.Gender(profile.Gender),
			*profile.BirthDate,
			profile.HeightCm,
			profile.WeightKg,
			health.ActivityLevel(profile.ActivityLevel),
		)
		if err == nil {
			view.Health = summary
		}
	}

	return view
}
