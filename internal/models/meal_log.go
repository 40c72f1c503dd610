package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kinlog/backend/internal/menu"
)

// JSONBCandidates stores the raw recognizer output as JSONB so a log can be
// inspected later even when no dish was matched.
type JSONBCandidates []menu.Candidate

// Value implements the driver.Valuer interface
func (c JSONBCandidates) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *JSONBCandidates) Scan(value interface{}) error {
	if value == nil {
		*c = JSONBCandidates{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// MealLog is one photographed meal. It is created at analysis time with the
// recognizer output and the best catalog match, then finalized exactly once
// when the user confirms a portion. The per-serving nutrition values are
// copied out of the catalog at analysis time so later catalog edits cannot
// change an existing log.
type MealLog struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`

	ImageURL       string          `gorm:"size:512;not null" json:"image_url"`
	AILabel        string          `gorm:"size:255" json:"ai_label"`
	AIProb         float64         `json:"ai_prob"`
	RawRecognition JSONBCandidates `gorm:"type:jsonb;default:'[]'" json:"raw_recognition"`

	// Match fields, empty when the matcher returned no confident match.
	DishID         string  `gorm:"size:64" json:"dish_id"`
	DishName       string  `gorm:"size:255" json:"dish_name"`
	BaseCalories   float64 `json:"base_calories"`
	BaseProtein    float64 `json:"base_protein"`
	BaseFat        float64 `json:"base_fat"`
	BaseCarbs      float64 `json:"base_carbs"`
	MatchedLabel   string  `gorm:"size:255" json:"matched_name"`
	MatchedKeyword string  `gorm:"size:255" json:"matched_keyword"`
	Confidence     float64 `json:"confidence"`

	// Confirmation fields, set when the user picks a portion.
	Portion       float64    `json:"portion"`
	FinalCalories float64    `json:"calories"`
	FinalProtein  float64    `json:"protein"`
	FinalFat      float64    `json:"fat"`
	FinalCarbs    float64    `json:"carbs"`
	LoggedAt      *time.Time `json:"logged_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// HasMatch reports whether analysis stored a confident dish match.
func (m *MealLog) HasMatch() bool {
	return m.DishID != ""
}

// Confirmed reports whether the user has finalized this log with a portion.
func (m *MealLog) Confirmed() bool {
	return m.LoggedAt != nil
}
