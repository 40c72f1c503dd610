package types

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries optional profile fields; nil pointers leave
// the stored value untouched.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	Gender        *string  `json:"gender"`
	BirthDate     *string  `json:"birth_date"` // RFC 3339 date
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
}

// AnalyzeRequest asks the backend to run recognition on an uploaded photo
type AnalyzeRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// ConfirmRequest finalizes a pending meal log with a chosen portion
type ConfirmRequest struct {
	LogID   string  `json:"log_id" binding:"required"`
	Portion float64 `json:"portion" binding:"required"`
}
