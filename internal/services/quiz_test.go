package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTopicsHidesCorrectness(t *testing.T) {
	db := openTestDB(t)
	seedQuizFixture(t, db, 2)
	s := NewQuizService(db)

	topics, err := s.ListTopics()
	require.NoError(t, err)
	require.Len(t, topics, 1)
	require.Len(t, topics[0].Quizzes, 1)
	require.Len(t, topics[0].Quizzes[0].Questions, 2)
	require.Len(t, topics[0].Quizzes[0].Questions[0].Options, 3)

	payload, err := json.Marshal(topics)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "is_correct")
	assert.NotContains(t, string(payload), "IsCorrect")
}

func TestGetQuiz(t *testing.T) {
	db := openTestDB(t)
	fx := seedQuizFixture(t, db, 3)
	s := NewQuizService(db)

	quiz, err := s.GetQuiz(fx.Quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.Quiz.Title, quiz.Title)
	assert.Len(t, quiz.Questions, 3)

	payload, err := json.Marshal(quiz)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "is_correct")
}

func TestGetQuizNotFound(t *testing.T) {
	db := openTestDB(t)
	s := NewQuizService(db)

	_, err := s.GetQuiz(42)
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Equal(t, "Quiz not found", svcErr.Message)
}

func TestQuestionsByTopicAndLevel(t *testing.T) {
	db := openTestDB(t)
	fx := seedQuizFixture(t, db, 2)
	s := NewQuizService(db)

	// Level match is case-insensitive.
	questions, err := s.QuestionsByTopicAndLevel(fx.Topic.ID, "BEGINNER")
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	// Empty level defaults to beginner.
	questions, err = s.QuestionsByTopicAndLevel(fx.Topic.ID, "")
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestionsByTopicAndLevelNotFound(t *testing.T) {
	db := openTestDB(t)
	fx := seedQuizFixture(t, db, 1)
	s := NewQuizService(db)

	_, err := s.QuestionsByTopicAndLevel(fx.Topic.ID, "advanced")
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, KindNotFound, svcErr.Kind)
	assert.Equal(t, "No quiz found for this topic and level", svcErr.Message)
}
