package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Divina-s/DigiChamp/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

type quizFixture struct {
	Topic     models.Topic
	Quiz      models.Quiz
	Questions []models.Question
	// Correct[i] / Wrong[i] are option ids of question i.
	Correct []uint
	Wrong   []uint
}

var fixtureSeq int

// seedQuizFixture creates one quiz with numQuestions questions, each with one
// correct and two wrong options.
func seedQuizFixture(t *testing.T, db *gorm.DB, numQuestions int) quizFixture {
	t.Helper()

	fixtureSeq++
	topic := models.Topic{Name: fmt.Sprintf("Topic %s %d", strings.ReplaceAll(t.Name(), "/", " "), fixtureSeq)}
	require.NoError(t, db.Create(&topic).Error)

	quiz := models.Quiz{TopicID: topic.ID, Title: topic.Name, Level: models.QuizLevelBeginner}
	require.NoError(t, db.Create(&quiz).Error)

	fx := quizFixture{Topic: topic, Quiz: quiz}
	for i := 0; i < numQuestions; i++ {
		q := models.Question{QuizID: quiz.ID, Text: fmt.Sprintf("Question %d?", i+1)}
		require.NoError(t, db.Create(&q).Error)

		correct := models.Option{QuestionID: q.ID, Text: "right", IsCorrect: true}
		require.NoError(t, db.Create(&correct).Error)
		wrongA := models.Option{QuestionID: q.ID, Text: "wrong a"}
		require.NoError(t, db.Create(&wrongA).Error)
		wrongB := models.Option{QuestionID: q.ID, Text: "wrong b"}
		require.NoError(t, db.Create(&wrongB).Error)

		fx.Questions = append(fx.Questions, q)
		fx.Correct = append(fx.Correct, correct.ID)
		fx.Wrong = append(fx.Wrong, wrongA.ID)
	}
	return fx
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
