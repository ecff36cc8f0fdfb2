// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"huglu_mobile_backend/internal/auth"
	"huglu_mobile_backend/internal/config"
	"huglu_mobile_backend/internal/gamification"
	"huglu_mobile_backend/internal/jobs"
	"huglu_mobile_backend/internal/middleware"
	"huglu_mobile_backend/internal/notification"
	"huglu_mobile_backend/internal/referral"
	"huglu_mobile_backend/internal/returns"
	"huglu_mobile_backend/internal/session"
	"huglu_mobile_backend/internal/shared"
	"huglu_mobile_backend/internal/twofactor"
	"huglu_mobile_backend/internal/user"
	"huglu_mobile_backend/internal/wishlist"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Jobs
	sessionPurgeJob *jobs.SessionPurgeJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *auth.Handler,
	notificationHandler *notification.Handler,
	wishlistHandler *wishlist.Handler,
	gamificationHandler *gamification.Handler,
	referralHandler *referral.Handler,
	returnsHandler *returns.Handler,
	twoFactorHandler *twofactor.Handler,
	userHandler *user.Handler,
	sessionPurgeJob *jobs.SessionPurgeJob,
	tokenService shared.TokenService,
	db *gorm.DB,
) (*Server, error) {
	if err := db.AutoMigrate(&session.Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store schema: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokenService, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Huglu Mobile API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	// Public auth routes (login, register)
	authHandler.RegisterPublicRoutes(v1.Group("/auth"))
	// Session-bound auth routes (logout, onboarding)
	authHandler.RegisterProtectedRoutes(v1.Group("/auth", authMW))

	notificationHandler.RegisterRoutes(v1.Group("/notifications", authMW))
	wishlistHandler.RegisterRoutes(v1.Group("/wishlist", authMW))
	gamificationHandler.RegisterRoutes(v1.Group("/gamification", authMW))
	referralHandler.RegisterRoutes(v1.Group("/referral", authMW))
	returnsHandler.RegisterRoutes(v1.Group("/returns", authMW))
	twoFactorHandler.RegisterRoutes(v1.Group("/two-factor", authMW))
	// Profile and addresses sit directly under /api/v1
	userHandler.RegisterRoutes(v1.Group("", authMW))

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:      httpServer,
		router:          router,
		cfg:             cfg,
		logger:          logger,
		sessionPurgeJob: sessionPurgeJob,
	}, nil
}

func (s *Server) Start() error {
	if s.sessionPurgeJob != nil {
		if err := s.sessionPurgeJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start session purge job", zap.Error(err))
		}
	} else {
		s.logger.Info("Session purge job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.sessionPurgeJob != nil {
		s.sessionPurgeJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
