package models

import "time"

// Answer holds the user's current selection for a question. One row per
// (user, question); a re-submission replaces the previous selection.
type Answer struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"user_id"`
	QuestionID       uint      `gorm:"not null;uniqueIndex:idx_user_question" json:"question_id"`
	SelectedOptionID uint      `gorm:"not null" json:"selected_option_id"`
	IsCorrect        bool      `gorm:"not null;default:false" json:"is_correct"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
