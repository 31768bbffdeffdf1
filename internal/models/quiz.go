package models

import "time"

type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TopicID   uint       `gorm:"not null;index" json:"topic_id"`
	Topic     Topic      `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Level     string     `gorm:"size:20;index" json:"level,omitempty"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

const (
	QuizLevelBeginner     = "beginner"
	QuizLevelIntermediate = "intermediate"
	QuizLevelAdvanced     = "advanced"
)
