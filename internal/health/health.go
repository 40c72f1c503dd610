package health

import (
	"errors"
	"time"
)

// ActivityLevel describes how active a user is, used to scale BMR into TDEE.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Gender is used to pick the BMR formula offset.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

var ErrInvalidMetrics = errors.New("height and weight must be positive")

// Summary bundles the derived energy-expenditure numbers for a profile.
type Summary struct {
	Age  int     `json:"age"`
	BMI  float64 `json:"bmi"`
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// Age computes full years between birthDate and now.
func Age(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BMI computes body mass index from weight in kg and height in cm.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	if h == 0 {
		return 0
	}
	return weightKg / (h * h)
}

// BMR computes basal metabolic rate using the Mifflin-St Jeor equation.
// The male offset is used for both male and other.
func BMR(gender Gender, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == Female {
		return base - 161
	}
	return base + 5
}

// ActivityMultiplier maps an activity level to its TDEE factor. Unknown
// levels fall back to moderate.
func ActivityMultiplier(level ActivityLevel) float64 {
	switch level {
	case Sedentary:
		return 1.2
	case Light:
		return 1.375
	case Moderate:
		return 1.55
	case Active:
		return 1.725
	case VeryActive:
		return 1.9
	default:
		return 1.55
	}
}

// TDEE computes total daily energy expenditure.
func TDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * ActivityMultiplier(level)
}

// BuildSummary derives age, BMI, BMR and TDEE from raw body metrics.
func BuildSummary(gender Gender, birthDate time.Time, heightCm, weightKg float64, level ActivityLevel) (*Summary, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return nil, ErrInvalidMetrics
	}

	age := Age(birthDate, time.Now())
	bmr := BMR(gender, weightKg, heightCm, age)

	return &Summary{
		Age:  age,
		BMI:  BMI(weightKg, heightCm),
		BMR:  bmr,
		TDEE: TDEE(bmr, level),
	}, nil
}
