package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/kinlog/backend/config"
	"github.com/kinlog/backend/internal/api"
	"github.com/kinlog/backend/internal/database"
	"github.com/kinlog/backend/internal/router"
	"github.com/kinlog/backend/internal/service"
)

// Server wires configuration, storage, and services into a running HTTP API.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New builds the full application: database connections, services, handlers,
// and routes. It fails fast on anything the API cannot run without. Redis is
// optional (the pending-match cache falls back to the database row), and a
// bucket that rejects the public-read policy degrades to presigned photo URLs.
func New(cfg *config.Config) (*Server, error) {
	healthDB, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	if err := database.RunMigrations(gormDB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// The pending-match cache falls back to the database row.
		log.Printf("[Server] Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	recognizer, err := service.NewRecognitionService()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recognition service: %w", err)
	}

	authService := service.NewAuthService(gormDB, cfg.JWTSecret)
	profileService := service.NewProfileService(gormDB)
	mealLogService := service.NewMealLogService(gormDB, recognizer, redisClient)

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3: %w", err)
	}
	presign := false
	if err := s3Config.SetupBucketPolicy(context.Background()); err != nil {
		// The recognizer has to fetch photos by URL, so a private bucket
		// means handing out presigned links instead of public ones.
		log.Printf("[Server] could not apply public-read bucket policy, falling back to presigned URLs: %v", err)
		presign = true
	}
	imageService := service.NewImageService(s3Config, presign)

	engine := router.SetupRouter(router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		Profile: api.NewProfileHandler(profileService),
		MealLog: api.NewMealLogHandler(mealLogService),
		Image:   api.NewImageHandler(imageService),
	}, authService, healthDB)

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
