package models

import "time"

// QuizAttempt is the append-only history of completed quizzes, one row per
// full-quiz submission.
type QuizAttempt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	QuizID      uint      `gorm:"not null;index" json:"quiz_id"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}
