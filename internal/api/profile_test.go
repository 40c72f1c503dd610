package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileEmpty(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "tester@example.com")

	w := env.request(t, "GET", "/api/v1/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["health"]), "no health summary until body metrics exist")
}

func TestUpdateProfileReturnsHealthSummary(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "tester@example.com")

	w := env.request(t, "PUT", "/api/v1/profile", `{
		"gender": "female",
		"birth_date": "1994-03-20",
		"height_cm": 162,
		"weight_kg": 55,
		"activity_level": "moderate"
	}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		HeightCm float64 `json:"height_cm"`
		Health   *struct {
			BMI  float64 `json:"bmi"`
			BMR  float64 `json:"bmr"`
			TDEE float64 `json:"tdee"`
		} `json:"health"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 162.0, resp.HeightCm)
	require.NotNil(t, resp.Health)
	assert.Greater(t, resp.Health.TDEE, resp.Health.BMR)
}

func TestUpdateProfileBadBirthDate(t *testing.T) {
	env := setupTestEnv(t)
	token := env.registerUser(t, "tester@example.com")

	w := env.request(t, "PUT", "/api/v1/profile", `{"birth_date": "20/03/1994"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, "GET", "/api/v1/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
