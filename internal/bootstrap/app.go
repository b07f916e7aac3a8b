// Package bootstrap wires the application together: configuration, logger,
// infrastructure clients, repositories, services, handlers, router.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/jkrahl/educahub-backend/internal/handler/http"
	"github.com/jkrahl/educahub-backend/internal/infra/mail"
	gormpersistence "github.com/jkrahl/educahub-backend/internal/infra/persistence/gorm"
	"github.com/jkrahl/educahub-backend/internal/infra/setup"
	redisstate "github.com/jkrahl/educahub-backend/internal/infra/state/redis"
	s3store "github.com/jkrahl/educahub-backend/internal/infra/storage/s3"
	"github.com/jkrahl/educahub-backend/internal/middleware"
	"github.com/jkrahl/educahub-backend/internal/service"
	"github.com/jkrahl/educahub-backend/internal/token"
	"github.com/jkrahl/educahub-backend/internal/worker"
)

// App owns every component of the process so Shutdown can release them in
// order. All clients are constructed here and injected; there are no
// package-level singletons.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	AsynqClient *asynq.Client
	AsynqServer *worker.WorkerServer
	HTTPServer  *http.Server
}

// NewApp builds and wires the whole application.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	// Infrastructure.
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	log.Info("Database initialized")

	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	fileStore, err := s3store.NewS3FileStore(context.Background(), s3store.Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 file store: %w", err)
	}
	log.Info("S3 file store initialized")

	mailer, err := mail.NewMailerSend(cfg.MailerSendAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to init mailer: %w", err)
	}

	redisClientOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	asynqClient := asynq.NewClient(redisClientOpt)
	log.Info("Asynq client initialized")

	// Repositories.
	userRepo := gormpersistence.NewGormUserRepository(db)
	postRepo := gormpersistence.NewGormPostRepository(db)
	commentRepo := gormpersistence.NewGormCommentRepository(db)
	likeRepo := gormpersistence.NewGormLikeRepository(db)
	subjectRepo := gormpersistence.NewGormSubjectRepository(db)
	stateRepo := redisstate.NewRedisStateRepository(redisClient, cfg.KeyPrefix)

	// Services.
	codec, err := token.NewCodec(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}
	authService, err := service.NewAuthService(userRepo, codec)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	resetService := service.NewResetService(userRepo, stateRepo, asynqClient)
	postService := service.NewPostService(postRepo, fileStore)
	commentService := service.NewCommentService(commentRepo, postRepo)
	likeService := service.NewLikeService(likeRepo, postRepo)
	subjectService := service.NewSubjectService(subjectRepo)
	announcementService := service.NewAnnouncementService(stateRepo)
	userService := service.NewUserService(userRepo, postRepo)
	log.Info("Services initialized")

	// Handlers.
	authHandler := httpHandler.NewAuthHandler(authService, resetService)
	postHandler := httpHandler.NewPostHandler(postService, authService)
	commentHandler := httpHandler.NewCommentHandler(commentService, authService)
	likeHandler := httpHandler.NewLikeHandler(likeService, authService)
	subjectHandler := httpHandler.NewSubjectHandler(subjectService, authService)
	announcementHandler := httpHandler.NewAnnouncementHandler(announcementService, authService)
	userHandler := httpHandler.NewUserHandler(userService)

	// Worker.
	workerServer := worker.NewWorkerServer(redisClientOpt, mailer, log)

	// Router.
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg.CORSOrigin))
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	authn := middleware.Auth(codec)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.DELETE("/delete", authHandler.Delete)
		auth.POST("/reset", authHandler.RequestReset)
		auth.POST("/reset/:token", authHandler.ConfirmReset)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.POST("", authn, postHandler.Create)
		posts.GET("/:url", postHandler.Get)
		posts.GET("/:url/file", postHandler.GetFile)
		posts.DELETE("/:url", authn, postHandler.Delete)

		posts.GET("/:url/likes", authn, likeHandler.Status)
		posts.POST("/:url/likes", authn, likeHandler.Like)
		posts.DELETE("/:url/likes", authn, likeHandler.Unlike)

		posts.GET("/:url/comments", commentHandler.List)
		posts.POST("/:url/comments", authn, commentHandler.Create)
		posts.DELETE("/:url/comments/:uuid", authn, commentHandler.Delete)
	}

	router.GET("/subjects", subjectHandler.List)
	router.POST("/subjects", authn, subjectHandler.Create)

	router.GET("/users/:username", userHandler.Get)

	router.GET("/announcement", announcementHandler.Get)
	router.POST("/announcement", authn, announcementHandler.Set)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		AsynqClient: asynqClient,
		AsynqServer: workerServer,
		HTTPServer:  httpServer,
	}, nil
}

// Start launches the worker and the HTTP server.
func (a *App) Start() {
	go a.AsynqServer.Start()
	a.Log.Info("Worker server routine started")

	go func() {
		a.Log.Infof("HTTP server listening on %s", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown releases everything in reverse order of construction.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	if a.AsynqServer != nil {
		a.AsynqServer.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.AsynqClient != nil {
		if err := a.AsynqClient.Close(); err != nil {
			a.Log.Errorf("Error closing Asynq client: %v", err)
		}
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			}
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware logs one line per request with status, latency and client
// IP; the level follows the status class.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		switch {
		case errorMessage != "":
			entry.Error(errorMessage)
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
