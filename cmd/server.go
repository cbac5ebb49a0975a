package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/database"
	_ "github.com/pathway-infinity/pathway-api/docs"
	"github.com/pathway-infinity/pathway-api/internal/airtable"
	"github.com/pathway-infinity/pathway-api/internal/controller"
	authctrl "github.com/pathway-infinity/pathway-api/internal/controller/auth"
	quizctrl "github.com/pathway-infinity/pathway-api/internal/controller/quiz"
	schoolctrl "github.com/pathway-infinity/pathway-api/internal/controller/school"
	"github.com/pathway-infinity/pathway-api/internal/middleware"
	"github.com/pathway-infinity/pathway-api/internal/repository"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// appModule provides everything except *config.Config.
var appModule = fx.Options(
	// Infrastructure
	fx.Provide(
		database.NewDatabase,
		database.NewRedis,
		airtable.NewClient,
		func(c *airtable.Client) service.RecordLister { return c },
		NewGinEngine,
	),

	// Repositories Layer
	fx.Provide(
		repository.NewUserRepository,
		repository.NewSavedResultRepository,
		repository.NewRevokedTokenRepository,
	),

	// Services Layer
	fx.Provide(
		service.NewCompleter,
		service.NewSchoolService,
		service.NewRecommendationService,
		service.NewTokenService,
		service.NewAuthService,
		service.NewSavedResultService,
	),

	// API Controllers Layer
	fx.Provide(
		controller.NewHealthController,
		authctrl.NewAuthController,
		schoolctrl.NewSchoolController,
		quizctrl.NewQuizController,
	),

	fx.Invoke(RegisterRoutes),
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	// Origins must be explicit when credentials are allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(
	router *gin.Engine,
	tokens service.TokenService,
	health *controller.HealthController,
	authCtrl *authctrl.AuthController,
	schoolCtrl *schoolctrl.SchoolController,
	quizCtrl *quizctrl.QuizController,
) {
	router.GET("/healthz", health.Health)

	api := router.Group("/api")
	requireAuth := middleware.RequireAuth(tokens)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/session", requireAuth, authCtrl.Session)
	}

	api.GET("/schools", schoolCtrl.ListSchools)
	api.POST("/schools", schoolCtrl.QuerySchools)

	quizGroup := api.Group("/quiz")
	{
		quizGroup.GET("/questions", quizCtrl.GetQuestions)
		quizGroup.POST("/analyze", quizCtrl.Analyze)
		quizGroup.POST("/recommend", quizCtrl.Recommend)

		saved := quizGroup.Group("/save", requireAuth)
		saved.POST("", quizCtrl.SaveResult)
		saved.GET("", quizCtrl.ListSavedResults)
		saved.GET("/:id", quizCtrl.GetSavedResult)
		saved.DELETE("/:id", quizCtrl.DeleteSavedResult)
	}
}

// RegisterLifecycle starts the HTTP server and releases connections on stop.
func RegisterLifecycle(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *database.RedisClient,
	completer service.Completer,
) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Pathway Infinity API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			if closer, ok := completer.(io.Closer); ok {
				err = errors.Join(err, closer.Close())
			}
			return errors.Join(err, rdb.Close(), database.Close(db))
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.AutoMigrate(db)
}
