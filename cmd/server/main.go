package main

import (
	"context"
	"strings"

	"github.com/Divina-s/DigiChamp/internal/config"
	"github.com/Divina-s/DigiChamp/internal/database"
	"github.com/Divina-s/DigiChamp/internal/handlers"
	"github.com/Divina-s/DigiChamp/internal/middleware"
	"github.com/Divina-s/DigiChamp/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           DigiChamp API
// @version         1.0
// @description     Quiz backend with adaptive leveling and an AI tutor
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	log := newLogger(cfg.LogMode)
	defer log.Sync()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)
	if cfg.SeedDB {
		if err := database.Seed(db, log); err != nil {
			log.Fatalw("failed to seed database", "error", err)
		}
	}

	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	authService := services.NewAuthService(db, cfg.JWTSecret, mailer, cfg.ResetBaseURL, log)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	submissionService := services.NewSubmissionService(db, scoringService)

	tutorService, err := services.NewTutorService(context.Background(), db, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Fatalw("failed to init tutor service", "error", err)
	}

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	tutorHandler := handlers.NewTutorHandler(tutorService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.JWTAuth(authService), authHandler.Logout)
			auth.POST("/password-reset", authHandler.PasswordReset)
			auth.POST("/password-reset-confirm", authHandler.PasswordResetConfirm)
		}

		api.GET("/topics", quizHandler.ListTopics)
		api.GET("/quizzes/:id", quizHandler.GetQuiz)
		api.GET("/quiz/questions", quizHandler.QuestionsByTopicAndLevel)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(authService))
		{
			protected.POST("/quizzes/:id/submit", submissionHandler.SubmitQuiz)
			protected.POST("/quiz/submit-answer", submissionHandler.SubmitSingleAnswer)
			protected.POST("/ai-tutor", tutorHandler.Ask)
		}
	}

	log.Infow("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}

func newLogger(mode string) *zap.SugaredLogger {
	var logger *zap.Logger
	var err error
	switch strings.ToLower(mode) {
	case "prod", "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
