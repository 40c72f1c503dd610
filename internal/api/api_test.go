package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kinlog/backend/internal/database"
	"github.com/kinlog/backend/internal/menu"
	"github.com/kinlog/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRecognizer returns canned candidates, or an error when set.
type fakeRecognizer struct {
	candidates []menu.Candidate
	err        error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, imageURL string) ([]menu.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

// fakeImageStore records the last upload and hands back a fixed URL.
type fakeImageStore struct {
	lastContentType string
	err             error
}

func (f *fakeImageStore) UploadMealPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastContentType = contentType
	return "https://photos.example.com/meal.jpg", nil
}

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	recognizer *fakeRecognizer
	imageStore *fakeImageStore
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kinlog_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	recognizer := &fakeRecognizer{}
	store := &fakeImageStore{}

	authService := service.NewAuthService(db, "test-secret")
	mealLogService := service.NewMealLogService(db, recognizer, nil)
	profileService := service.NewProfileService(db)

	engine := gin.New()
	v1 := engine.Group("/api/v1")

	authHandler := NewAuthHandler(authService)
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := authService.ValidateToken(authHeader[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("user_id", claims.UserID)
	})
	NewMealLogHandler(mealLogService).RegisterRoutes(protected)
	NewProfileHandler(profileService).RegisterRoutes(protected)
	NewImageHandler(store).RegisterRoutes(protected)

	return &testEnv{
		router:     engine,
		db:         db,
		recognizer: recognizer,
		imageStore: store,
	}
}

// registerUser registers a test user and returns their bearer token.
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"name": "Tester", "email": %q, "password": "secret123"}`, email)
	w := e.request(t, "POST", "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func (e *testEnv) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
