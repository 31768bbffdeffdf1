package services

import (
	"errors"
	"strings"

	"github.com/Divina-s/DigiChamp/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// Response views deliberately carry no is_correct flag: correctness is only
// revealed through the submission endpoints.

type OptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Options []OptionView `json:"options"`
}

type QuizView struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Level     string         `json:"level,omitempty"`
	Questions []QuestionView `json:"questions"`
}

type TopicView struct {
	ID      uint       `json:"id"`
	Name    string     `json:"name"`
	Quizzes []QuizView `json:"quizzes"`
}

func (s *QuizService) ListTopics() ([]TopicView, error) {
	var topics []models.Topic
	err := s.db.
		Preload("Quizzes").
		Preload("Quizzes.Questions").
		Preload("Quizzes.Questions.Options").
		Order("id ASC").
		Find(&topics).Error
	if err != nil {
		return nil, internalError("failed to load topics", err)
	}

	views := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		tv := TopicView{ID: t.ID, Name: t.Name, Quizzes: []QuizView{}}
		for _, q := range t.Quizzes {
			tv.Quizzes = append(tv.Quizzes, quizView(q))
		}
		views = append(views, tv)
	}
	return views, nil
}

func (s *QuizService) GetQuiz(quizID uint) (*QuizView, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions").
		Preload("Questions.Options").
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Quiz not found")
		}
		return nil, internalError("failed to load quiz", err)
	}

	view := quizView(quiz)
	return &view, nil
}

// QuestionsByTopicAndLevel returns the question set of the first quiz
// matching the topic and difficulty tag. The level match is
// case-insensitive; an empty level defaults to beginner.
func (s *QuizService) QuestionsByTopicAndLevel(topicID uint, level string) ([]QuestionView, error) {
	if level == "" {
		level = models.QuizLevelBeginner
	}
	level = strings.ToLower(level)

	var quiz models.Quiz
	err := s.db.
		Where("topic_id = ? AND LOWER(level) = ?", topicID, level).
		Preload("Questions").
		Preload("Questions.Options").
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("No quiz found for this topic and level")
		}
		return nil, internalError("failed to load quiz", err)
	}

	questions := make([]QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, questionView(q))
	}
	return questions, nil
}

func quizView(q models.Quiz) QuizView {
	view := QuizView{ID: q.ID, Title: q.Title, Level: q.Level, Questions: []QuestionView{}}
	for _, question := range q.Questions {
		view.Questions = append(view.Questions, questionView(question))
	}
	return view
}

func questionView(q models.Question) QuestionView {
	view := QuestionView{ID: q.ID, Text: q.Text, Options: []OptionView{}}
	for _, o := range q.Options {
		view.Options = append(view.Options, OptionView{ID: o.ID, Text: o.Text})
	}
	return view
}
