package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kinlog/backend/internal/menu"
	"github.com/kinlog/backend/internal/models"
)

var (
	ErrLogNotFound     = errors.New("meal log not found")
	ErrNoDishMatch     = errors.New("meal log has no dish match")
	ErrInvalidPortion  = errors.New("portion must be a positive number")
	ErrMissingImageURL = errors.New("image url is required")
)

// pendingMatchTTL bounds how long an unconfirmed analysis stays cached.
const pendingMatchTTL = 24 * time.Hour

// MealLogService owns the analyze/confirm lifecycle of meal logs. The
// catalog match is persisted on the log row; Redis only caches the pending
// match so the confirmation screen can render without a DB read.
type MealLogService struct {
	db         *gorm.DB
	recognizer Recognizer
	redis      *redis.Client
}

// NewMealLogService creates a new MealLogService instance
func NewMealLogService(db *gorm.DB, recognizer Recognizer, redisClient *redis.Client) *MealLogService {
	return &MealLogService{
		db:         db,
		recognizer: recognizer,
		redis:      redisClient,
	}
}

// AnalysisResult is what the analyze endpoint returns to the client.
type AnalysisResult struct {
	LogID      uuid.UUID        `json:"log_id"`
	TopResults []menu.Candidate `json:"top_results"`
	Match      *menu.DishMatch  `json:"match"`
}

// ConfirmedNutrition is the outcome of a portion confirmation.
type ConfirmedNutrition struct {
	LogID    uuid.UUID `json:"log_id"`
	DishName string    `json:"dish_name"`
	Portion  float64   `json:"portion"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Fat      float64   `json:"fat"`
	Carbs    float64   `json:"carbs"`
}

// Analyze runs recognition on the photo at imageURL, matches the candidates
// against the dish catalog and stores a pending meal log. A nil Match in the
// result is a normal outcome: the caller shows the raw recognizer output and
// offers no auto-fill.
func (s *MealLogService) Analyze(ctx context.Context, userID uuid.UUID, imageURL string) (*AnalysisResult, error) {
	if imageURL == "" {
		return nil, ErrMissingImageURL
	}

	candidates, err := s.recognizer.Recognize(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	match := menu.Match(candidates, menu.Dishes())

	entry := models.MealLog{
		UserID:         userID,
		ImageURL:       imageURL,
		RawRecognition: candidates,
	}
	if len(candidates) > 0 {
		entry.AILabel = candidates[0].Label
		entry.AIProb = candidates[0].Prob
	}
	if match != nil {
		entry.DishID = match.Dish.ID
		entry.DishName = match.Dish.DisplayName
		entry.BaseCalories = match.Dish.BaseCalories
		entry.BaseProtein = match.Dish.Protein
		entry.BaseFat = match.Dish.Fat
		entry.BaseCarbs = match.Dish.Carbs
		entry.MatchedLabel = match.MatchedLabel
		entry.MatchedKeyword = match.MatchedKeyword
		entry.Confidence = match.Confidence
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to store meal log: %w", err)
	}

	s.cachePendingMatch(ctx, userID, entry.ID, match)

	return &AnalysisResult{
		LogID:      entry.ID,
		TopResults: candidates,
		Match:      match,
	}, nil
}

// Confirm finalizes a pending log with the user's chosen portion. Final
// macros are the stored per-serving values scaled by portion, unrounded.
// Re-confirming overwrites the previous confirmation instead of adding to
// it, so the call is safe to repeat with the same portion. LoggedAt records
// when the meal was confirmed eaten, not when it was analyzed.
func (s *MealLogService) Confirm(ctx context.Context, userID, logID uuid.UUID, portion float64) (*ConfirmedNutrition, error) {
	if portion <= 0 {
		return nil, ErrInvalidPortion
	}

	var entry models.MealLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	if !entry.HasMatch() {
		return nil, ErrNoDishMatch
	}

	now := time.Now()
	entry.Portion = portion
	entry.FinalCalories = entry.BaseCalories * portion
	entry.FinalProtein = entry.BaseProtein * portion
	entry.FinalFat = entry.BaseFat * portion
	entry.FinalCarbs = entry.BaseCarbs * portion
	entry.LoggedAt = &now

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save confirmation: %w", err)
	}

	s.dropPendingMatch(ctx, userID, entry.ID)

	return &ConfirmedNutrition{
		LogID:    entry.ID,
		DishName: entry.DishName,
		Portion:  entry.Portion,
		Calories: entry.FinalCalories,
		Protein:  entry.FinalProtein,
		Fat:      entry.FinalFat,
		Carbs:    entry.FinalCarbs,
	}, nil
}

// List returns the user's meal logs, newest first.
func (s *MealLogService) List(ctx context.Context, userID uuid.UUID) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// Delete removes a log owned by the user.
func (s *MealLogService) Delete(ctx context.Context, userID, logID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.MealLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}

	s.dropPendingMatch(ctx, userID, logID)
	return nil
}

// GetPendingMatch returns the cached match for an unconfirmed log, falling
// back to the stored row when the cache entry has expired. Cache keys carry
// the owner's id, so a hit never serves another user's match.
func (s *MealLogService) GetPendingMatch(ctx context.Context, userID, logID uuid.UUID) (*menu.DishMatch, error) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, pendingMatchKey(userID, logID)).Bytes()
		if err == nil {
			var match menu.DishMatch
			if err := json.Unmarshal(data, &match); err == nil {
				return &match, nil
			}
		}
	}

	var entry models.MealLog
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	if !entry.HasMatch() {
		return nil, ErrNoDishMatch
	}

	dish, ok := menu.Lookup(entry.DishID)
	if !ok {
		// The log keeps its own copy of the nutrition values, so a dish
		// removed from the catalog is still confirmable.
		dish = menu.Dish{
			ID:           entry.DishID,
			DisplayName:  entry.DishName,
			BaseCalories: entry.BaseCalories,
			Protein:      entry.BaseProtein,
			Fat:          entry.BaseFat,
			Carbs:        entry.BaseCarbs,
		}
	}

	return &menu.DishMatch{
		Dish:           dish,
		MatchedLabel:   entry.MatchedLabel,
		MatchedKeyword: entry.MatchedKeyword,
		Confidence:     entry.Confidence,
	}, nil
}

func (s *MealLogService) cachePendingMatch(ctx context.Context, userID, logID uuid.UUID, match *menu.DishMatch) {
	if s.redis == nil || match == nil {
		return
	}

	data, err := json.Marshal(match)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, pendingMatchKey(userID, logID), data, pendingMatchTTL).Err(); err != nil {
		// Cache only; the match is already on the log row.
		log.Printf("[MealLogService] failed to cache pending match for %s: %v", logID, err)
	}
}

func (s *MealLogService) dropPendingMatch(ctx context.Context, userID, logID uuid.UUID) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, pendingMatchKey(userID, logID)).Err(); err != nil {
		log.Printf("[MealLogService] failed to drop pending match for %s: %v", logID, err)
	}
}

// pendingMatchKey includes the owner's id so cache lookups are scoped the
// same way the database query is.
func pendingMatchKey(userID, logID uuid.UUID) string {
	return fmt.Sprintf("meallog:pending:%s:%s", userID, logID)
}
