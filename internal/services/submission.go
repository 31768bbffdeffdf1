package services

import (
	"errors"
	"math"
	"time"

	"github.com/Divina-s/DigiChamp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionService struct {
	db      *gorm.DB
	scoring *ScoringService
}

func NewSubmissionService(db *gorm.DB, scoring *ScoringService) *SubmissionService {
	return &SubmissionService{db: db, scoring: scoring}
}

type QuizResult struct {
	TotalQuestions  int     `json:"total_questions"`
	CorrectAnswers  int     `json:"correct_answers"`
	ScorePercentage float64 `json:"score_percentage"`
	AssignedLevel   string  `json:"assigned_level"`
}

// SubmitQuiz grades a full-quiz submission, records the user's answers and
// attempt, and rewrites the UserLevel row for the quiz's topic. Selections
// may be partial; entries referencing a question outside the quiz or an
// option from another question are dropped rather than failing the whole
// submission. Nothing is written if the quiz doesn't exist.
func (s *SubmissionService) SubmitQuiz(userID, quizID uint, selections map[uint]uint) (*QuizResult, error) {
	var quiz models.Quiz
	if err := s.db.Preload("Questions.Options").First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Quiz not found")
		}
		return nil, internalError("failed to load quiz", err)
	}

	score := s.scoring.Score(quiz.Questions, selections)
	level := s.scoring.LevelForScore(score.Percentage)

	now := time.Now()
	answers := make([]models.Answer, 0, len(selections))
	for _, q := range quiz.Questions {
		optionID, answered := selections[q.ID]
		if !answered {
			continue
		}
		for _, o := range q.Options {
			if o.ID == optionID {
				answers = append(answers, models.Answer{
					UserID:           userID,
					QuestionID:       q.ID,
					SelectedOptionID: o.ID,
					IsCorrect:        o.IsCorrect,
					SubmittedAt:      now,
				})
				break
			}
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(answers) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"selected_option_id", "is_correct", "submitted_at"}),
			}).Create(&answers).Error; err != nil {
				return err
			}
		}

		attempt := models.QuizAttempt{
			UserID:      userID,
			QuizID:      quizID,
			Score:       int(math.Round(score.Percentage)),
			CompletedAt: now,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		// Single-statement upsert: concurrent submissions for the same
		// (user, topic) must not interleave a read-then-write.
		userLevel := models.UserLevel{
			UserID:    userID,
			TopicID:   quiz.TopicID,
			Level:     level,
			UpdatedAt: now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
		}).Create(&userLevel).Error
	})
	if err != nil {
		return nil, internalError("failed to record submission", err)
	}

	return &QuizResult{
		TotalQuestions:  score.TotalQuestions,
		CorrectAnswers:  score.CorrectCount,
		ScorePercentage: score.Percentage,
		AssignedLevel:   level,
	}, nil
}

type CorrectOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type SingleAnswerResult struct {
	QuestionID     uint            `json:"question_id"`
	IsCorrect      bool            `json:"is_correct"`
	CorrectAnswers []CorrectOption `json:"correct_answers"`
	Message        string          `json:"message"`
}

// SubmitSingleAnswer records one answer outside the full-quiz flow. The
// option lookup is scoped to the question: an option that exists but hangs
// off a different question is rejected, not recorded. UserLevel is untouched;
// leveling only happens on full-quiz submission.
func (s *SubmissionService) SubmitSingleAnswer(userID, questionID, optionID uint) (*SingleAnswerResult, error) {
	var question models.Question
	if err := s.db.Preload("Options").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("Question not found")
		}
		return nil, internalError("failed to load question", err)
	}

	var selected *models.Option
	for i := range question.Options {
		if question.Options[i].ID == optionID {
			selected = &question.Options[i]
			break
		}
	}
	if selected == nil {
		return nil, scopeMismatchError("Option not found for this question")
	}

	answer := models.Answer{
		UserID:           userID,
		QuestionID:       question.ID,
		SelectedOptionID: selected.ID,
		IsCorrect:        selected.IsCorrect,
		SubmittedAt:      time.Now(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_option_id", "is_correct", "submitted_at"}),
	}).Create(&answer).Error; err != nil {
		return nil, internalError("failed to record answer", err)
	}

	result := &SingleAnswerResult{
		QuestionID: question.ID,
		IsCorrect:  selected.IsCorrect,
		Message:    "Incorrect.",
	}
	if selected.IsCorrect {
		result.Message = "Correct!"
	}
	for _, o := range question.Options {
		if o.IsCorrect {
			result.CorrectAnswers = append(result.CorrectAnswers, CorrectOption{ID: o.ID, Text: o.Text})
		}
	}
	return result, nil
}
