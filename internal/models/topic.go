package models

type Topic struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Quizzes []Quiz `gorm:"foreignKey:TopicID" json:"quizzes,omitempty"`
}
