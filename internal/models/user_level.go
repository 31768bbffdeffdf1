package models

import "time"

// UserLevel is the derived proficiency for a (user, topic) pair. Each full-quiz
// submission overwrites the row; it is a snapshot, not a history.
type UserLevel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_topic" json:"user_id"`
	TopicID   uint      `gorm:"not null;uniqueIndex:idx_user_topic" json:"topic_id"`
	Level     string    `gorm:"size:50;not null" json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
}
