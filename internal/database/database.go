package database

import (
	"fmt"

	"github.com/Divina-s/DigiChamp/internal/config"
	"github.com/Divina-s/DigiChamp/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *zap.SugaredLogger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	log.Infow("database connected", "host", cfg.DBHost, "db", cfg.DBName)
	return db
}

func AutoMigrate(db *gorm.DB, log *zap.SugaredLogger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.RevokedToken{},
		&models.Topic{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.Answer{},
		&models.UserLevel{},
		&models.QuizAttempt{},
	)
	if err != nil {
		log.Fatalw("failed to auto-migrate", "error", err)
	}
	log.Infow("database migrated")
}
